package v1

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/handler"
)

func RegisterSkills(r fiber.Router, skillHandler *handler.SkillHandler, auth, admin fiber.Handler) {
	if r == nil || skillHandler == nil {
		return
	}

	skillHandler.RegisterRoutes(r, auth, admin)
}
