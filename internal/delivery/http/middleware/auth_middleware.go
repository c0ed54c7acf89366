package middleware

import (
	"errors"
	"strings"

	"job-scout/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

// CtxSubjectKey is where the middleware stores the authenticated subject
// for downstream handlers.
const CtxSubjectKey = "subject"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware requires a valid access token. Refresh tokens are rejected
// here; they are only good at the refresh endpoint.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := bearerToken(c.Get("Authorization"))
		if token == "" {
			return NewAppError(fiber.StatusUnauthorized, "Missing bearer token", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		case err != nil:
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		case claims.TokenType != jwt.TokenTypeAccess:
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
		}

		c.Locals(CtxSubjectKey, claims.Subject)
		return c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
