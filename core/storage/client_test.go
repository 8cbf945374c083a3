package storage_test

import (
	"testing"

	"travel-admin/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "travel-assets",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestConfig_BaseURL(t *testing.T) {
	t.Run("Derived From Endpoint", func(t *testing.T) {
		cfg := storage.Config{Endpoint: "localhost:9000", Bucket: "travel-assets"}
		assert.Equal(t, "http://localhost:9000/travel-assets", cfg.BaseURL())
	})

	t.Run("Derived With SSL", func(t *testing.T) {
		cfg := storage.Config{Endpoint: "s3.amazonaws.com", Bucket: "travel-assets", UseSSL: true}
		assert.Equal(t, "https://s3.amazonaws.com/travel-assets", cfg.BaseURL())
	})

	t.Run("Explicit Public URL", func(t *testing.T) {
		cfg := storage.Config{Endpoint: "localhost:9000", Bucket: "media", PublicURL: "https://cdn.example.com"}
		assert.Equal(t, "https://cdn.example.com/media", cfg.BaseURL())
	})
}
