package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"callbooking-service/internal/pkg/errors"
	"callbooking-service/internal/pkg/helpers"
)

type Middleware struct {
	Log       *otelzap.Logger
	JwtSecret string
}

type TokenClaims struct {
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
	jwt.RegisteredClaims
}

// ValidateToken extracts the Bearer token and injects the authenticated
// principal (id, role, email, verification flag) into request locals.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	tokenString := strings.TrimPrefix(auth, "Bearer ")

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.JwtSecret), nil
	})
	if err != nil || !token.Valid {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse user id from token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", userID)
	ctx.Locals("role", claims.Role)
	ctx.Locals("email_user", claims.Email)
	ctx.Locals("is_verified", claims.IsVerified)

	return ctx.Next()
}

func (m *Middleware) InfluencerOnly(ctx *fiber.Ctx) error {
	if role, ok := ctx.Locals("role").(string); !ok || role != "influencer" {
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("only influencers can access this resource"))
	}
	return ctx.Next()
}

func (m *Middleware) AdminOnly(ctx *fiber.Ctx) error {
	if role, ok := ctx.Locals("role").(string); !ok || role != "admin" {
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("admin access required"))
	}
	return ctx.Next()
}
