package v1

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/handler"
)

func RegisterUsers(r fiber.Router, userHandler *handler.UserHandler, userSkillHandler *handler.UserSkillHandler, auth, seeker fiber.Handler) {
	if r == nil || userHandler == nil {
		return
	}

	userHandler.RegisterRoutes(r, auth)
	if userSkillHandler != nil {
		userSkillHandler.RegisterRoutes(r, auth, seeker)
	}
}
