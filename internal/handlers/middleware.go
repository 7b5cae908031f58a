package handlers

import (
	"net/http"
	"strings"

	"insurance-service/internal/auth"
	"insurance-service/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

const localUserID = "user_id"

type Middleware struct {
	identity *auth.IdentityService
}

func NewMiddleware(identity *auth.IdentityService) *Middleware {
	return &Middleware{identity: identity}
}

// RequireAuth verifies the bearer token with the identity provider and
// attaches the caller's UID for downstream handlers.
func (m *Middleware) RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(
				utils.CreateErrorResponse("MISSING_TOKEN", "authorization header required"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		principal, err := m.identity.VerifyToken(c.Context(), tokenString)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(
				utils.CreateErrorResponse("INVALID_TOKEN", "token validation failed"))
		}

		c.Locals(localUserID, principal.UID)
		return c.Next()
	}
}

// requestUserID returns the authenticated caller's UID set by RequireAuth.
func requestUserID(c fiber.Ctx) string {
	if uid, ok := c.Locals(localUserID).(string); ok {
		return uid
	}
	return ""
}
