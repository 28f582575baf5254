package v1

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/handler"
)

func RegisterApplications(r fiber.Router, applicationHandler *handler.ApplicationHandler, auth, seeker, employer fiber.Handler) {
	if r == nil || applicationHandler == nil {
		return
	}

	applicationHandler.RegisterRoutes(r, auth, seeker, employer)
}
