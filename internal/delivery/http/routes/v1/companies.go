package v1

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/handler"
)

func RegisterCompanies(r fiber.Router, companyHandler *handler.CompanyHandler, auth, employer fiber.Handler) {
	if r == nil || companyHandler == nil {
		return
	}

	companyHandler.RegisterRoutes(r, auth, employer)
}
