package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/response"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.Check)
}

// Check reports liveness plus a bounded database ping so load balancers
// stop routing to an instance that lost its store.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			return response.Error(c, fiber.StatusServiceUnavailable, "database unreachable", nil)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]string{"status": "up"})
}
