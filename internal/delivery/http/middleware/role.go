package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
)

// RequireRole gates a route to actors holding one of the given roles.
// It must run after the auth middleware.
func RequireRole(roles ...user.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		actor, ok := ActorFromCtx(c)
		if !ok {
			return apperr.Unauthorized("authentication required")
		}
		for _, r := range roles {
			if actor.Role == r {
				return c.Next()
			}
		}
		return apperr.Forbidden("insufficient role")
	}
}
