package middleware_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"krishiseva/internal/middleware"
	"krishiseva/internal/models"
	"krishiseva/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newProtectedApp(tokens *services.TokenService) *fiber.App {
	app := fiber.New()
	app.Get("/me", middleware.AuthRequired(tokens), func(c *fiber.Ctx) error {
		identity := middleware.CurrentUser(c)
		return c.JSON(fiber.Map{"id": identity.UserID, "role": identity.Role})
	})
	return app
}

func callMe(t *testing.T, app *fiber.App, authHeader string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestAuthRequired(t *testing.T) {
	issuedAt := time.Now()
	clock := issuedAt
	tokens := services.NewTokenService("middleware_secret", time.Hour).
		WithClock(func() time.Time { return clock })
	app := newProtectedApp(tokens)

	token, err := tokens.Issue("user-1", "asha@example.com", models.RoleSeller)
	require.NoError(t, err)

	status, body := callMe(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user-1", body["id"])
	assert.Equal(t, "Seller", body["role"])

	for _, header := range []string{"", "Bearer", "Bearer ", "Token " + token, token} {
		status, body = callMe(t, app, header)
		assert.Equal(t, fiber.StatusUnauthorized, status, "header %q", header)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Access denied. No token provided.", body["error"])
	}

	status, body = callMe(t, app, "Bearer not.a.token")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token. Authentication failed.", body["error"])

	clock = issuedAt.Add(2 * time.Hour)
	status, body = callMe(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Token has expired. Please login again.", body["error"])
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(middleware.RequestLogger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(200), entries[0].ContextMap()["status"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(404), entries[1].ContextMap()["status"])
}
