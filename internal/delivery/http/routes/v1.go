package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/config"
	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	v1 "github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/routes/v1"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db)
}
