package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"travel-admin/core/database"
	"travel-admin/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	cfg := testConfig()
	svc := NewService(db, cfg, zap.NewNop())
	require.NoError(t, svc.Migrate())
	require.NoError(t, svc.Seed(context.Background()))

	app := fiber.New()
	protect := auth.New(auth.Config{Secret: cfg.JwtSecret})
	NewHandler(svc).RegisterRoutes(app, protect)
	return app, svc
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	body := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(body).Encode(v))
	return body
}

func TestHandleLogin(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("Issues Token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/login",
			jsonBody(t, fiber.Map{"username": "admin", "password": "initial-password"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body["token"])
	})

	t.Run("Rejects Bad Credentials", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/login",
			jsonBody(t, fiber.Map{"username": "admin", "password": "guess"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}

func TestHandleChangePassword_RequiresSession(t *testing.T) {
	app, svc := setupTestApp(t)

	t.Run("No Token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/change-password",
			jsonBody(t, fiber.Map{"oldPassword": "initial-password", "newPassword": "next"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("With Token", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "admin", "initial-password")
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/admin/change-password",
			jsonBody(t, fiber.Map{"oldPassword": "initial-password", "newPassword": "next"}))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		_, err = svc.Login(context.Background(), "admin", "next")
		assert.NoError(t, err)
	})
}

func TestHandleStats_RequiresSession(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/api/admin/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
