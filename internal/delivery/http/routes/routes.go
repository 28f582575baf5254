// Package routes owns the HTTP route table. The registry builds every
// repository, usecase and handler once and mounts them on the app.
package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/config"
	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/handler"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB) *Registry {
	return &Registry{cfg: cfg, db: db, health: handler.NewHealthHandler(db)}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db)
}
