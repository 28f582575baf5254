package v1

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/handler"
)

func RegisterCategories(r fiber.Router, categoryHandler *handler.CategoryHandler, auth, admin fiber.Handler) {
	if r == nil || categoryHandler == nil {
		return
	}

	categoryHandler.RegisterRoutes(r, auth, admin)
}
