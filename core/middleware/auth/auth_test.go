package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/*", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		path   string
		key    string
		status int
	}{
		{"Disabled", Config{}, "/", "", fiber.StatusOK},
		{"MissingKey", Config{ApiKey: "k"}, "/", "", fiber.StatusUnauthorized},
		{"WrongKey", Config{ApiKey: "k"}, "/", "nope", fiber.StatusUnauthorized},
		{"ValidKey", Config{ApiKey: "k"}, "/", "k", fiber.StatusOK},
		{"Skipped", Config{ApiKey: "k", Next: func(c *fiber.Ctx) bool { return c.Path() == "/health" }}, "/health", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.key != "" {
				req.Header.Set(Header, tt.key)
			}
			resp, err := newApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
