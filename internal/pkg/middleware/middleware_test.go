package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	logpkg "callbooking-service/internal/pkg/log"
	"callbooking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims middleware.TokenClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func testClaims(role string) middleware.TokenClaims {
	return middleware.TokenClaims{
		UserID:     uuid.NewString(),
		Role:       role,
		Email:      "user@example.com",
		IsVerified: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newApp(m *middleware.Middleware, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{m.ValidateToken}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/protected", handlers...)
	return app
}

func TestValidateToken(t *testing.T) {
	m := &middleware.Middleware{Log: logpkg.Setup(), JwtSecret: testSecret}

	t.Run("valid token passes and fills locals", func(t *testing.T) {
		app := fiber.New()
		app.Get("/protected", m.ValidateToken, func(c *fiber.Ctx) error {
			_, ok := c.Locals("user_id").(uuid.UUID)
			assert.True(t, ok)
			assert.Equal(t, "user", c.Locals("role"))
			assert.Equal(t, "user@example.com", c.Locals("email_user"))
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testClaims("user")))
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		app := newApp(m)

		req := httptest.NewRequest("GET", "/protected", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		app := newApp(m)

		other, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, testClaims("user")).SignedString([]byte("other-secret"))
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		app := newApp(m)

		claims := testClaims("user")
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRoleGuards(t *testing.T) {
	m := &middleware.Middleware{Log: logpkg.Setup(), JwtSecret: testSecret}

	t.Run("influencer guard blocks plain users", func(t *testing.T) {
		app := newApp(m, m.InfluencerOnly)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testClaims("user")))
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin guard admits admins", func(t *testing.T) {
		app := newApp(m, m.AdminOnly)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testClaims("admin")))
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
