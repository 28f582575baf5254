package v1

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/handler"
)

func RegisterJobs(r fiber.Router, jobHandler *handler.JobHandler, applicationHandler *handler.ApplicationHandler, auth, seeker, employer, admin fiber.Handler) {
	if r == nil || jobHandler == nil {
		return
	}

	jobHandler.RegisterRoutes(r, auth, employer, admin)
	if applicationHandler != nil {
		applicationHandler.RegisterJobRoutes(r, auth, seeker, employer)
	}
}
