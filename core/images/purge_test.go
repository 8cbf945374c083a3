package images

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"travel-admin/core/storage"
	"travel-admin/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestUploader(client storage.Client) *Uploader {
	cfg := storage.Config{Endpoint: "localhost:9000", Bucket: "travel-assets"}
	return NewUploader(client, cfg, zap.NewNop())
}

func TestPurge_SkipsUnextractableRefs(t *testing.T) {
	mockClient := new(mocks.Client)
	u := newTestUploader(mockClient)

	results := u.Purge(context.Background(), []string{"https://host/files/no-marker.jpg"})

	assert.Len(t, results, 1)
	assert.True(t, results[0].Skipped)
	assert.NoError(t, results[0].Err)
	// No remote calls at all for a ref that yields no identifier.
	mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	mockClient.AssertNotCalled(t, "RemoveObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPurge_RemovesMatchingObjects(t *testing.T) {
	mockClient := new(mocks.Client)
	u := newTestUploader(mockClient)

	mockClient.On("ListObjects", mock.Anything, "travel-assets", mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 1)
			if strings.HasPrefix(opts.Prefix, "upload/v1/destinations/abc") {
				ch <- minio.ObjectInfo{Key: "upload/v1/destinations/abc.jpg"}
			}
			close(ch)
			return ch
		})
	mockClient.On("RemoveObject", mock.Anything, "travel-assets", "upload/v1/destinations/abc.jpg", mock.Anything).
		Return(nil)

	results := u.Purge(context.Background(), []string{"https://host/travel-assets/upload/v1/destinations/abc.jpg"})

	assert.Len(t, results, 1)
	assert.False(t, results[0].Skipped)
	assert.Equal(t, "destinations/abc", results[0].PublicID)
	assert.NoError(t, results[0].Err)
	mockClient.AssertCalled(t, "RemoveObject", mock.Anything, "travel-assets", "upload/v1/destinations/abc.jpg", mock.Anything)
}

func TestPurge_FailOpenOnPartialFailure(t *testing.T) {
	mockClient := new(mocks.Client)
	u := newTestUploader(mockClient)

	mockClient.On("ListObjects", mock.Anything, "travel-assets", mock.Anything).
		Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 1)
			key := strings.TrimSuffix(opts.Prefix, "/") + ".jpg"
			ch <- minio.ObjectInfo{Key: key}
			close(ch)
			return ch
		})
	mockClient.On("RemoveObject", mock.Anything, "travel-assets", "upload/v1/hotels/bad.jpg", mock.Anything).
		Return(fmt.Errorf("storage unavailable"))
	mockClient.On("RemoveObject", mock.Anything, "travel-assets", "upload/v1/hotels/good.jpg", mock.Anything).
		Return(nil)

	results := u.Purge(context.Background(), []string{
		"https://host/travel-assets/upload/v1/hotels/bad.jpg",
		"https://host/travel-assets/upload/v1/hotels/good.jpg",
	})

	assert.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
}
