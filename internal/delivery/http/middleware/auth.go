package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/jwt"
	"github.com/Ankit73-bit/job-portal-backend/internal/usecase"
)

const ctxActorKey = "actor"

// AuthMiddleware verifies the bearer access token and stores the
// authenticated actor for handlers downstream.
type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get("Authorization"))
		if !ok {
			return apperr.Unauthorized("missing bearer token")
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return apperr.Unauthorized("token expired")
			}
			return apperr.Unauthorized("invalid token")
		}

		if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) {
			return apperr.Unauthorized("invalid token")
		}

		c.Locals(ctxActorKey, usecase.Actor{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  user.Role(claims.Role),
		})
		return c.Next()
	}
}

// ActorFromCtx returns the actor the auth middleware stored for this
// request.
func ActorFromCtx(c fiber.Ctx) (usecase.Actor, bool) {
	actor, ok := c.Locals(ctxActorKey).(usecase.Actor)
	return actor, ok
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
