package auth_test

import (
	"net/http/httptest"
	"testing"

	"library-sync/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantStatus int
	}{
		{"matching key", "secret", "secret", fiber.StatusOK},
		{"wrong key", "secret", "nope", fiber.StatusUnauthorized},
		{"missing key", "secret", "", fiber.StatusUnauthorized},
		{"empty config disables check", "", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/ping", nil)
			if tt.sent != "" {
				req.Header.Set(auth.HeaderName, tt.sent)
			}

			resp, err := newApp(tt.configured).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
