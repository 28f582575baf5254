package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/dto"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/application"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/response"
	"github.com/Ankit73-bit/job-portal-backend/internal/usecase"
)

type ApplicationHandler struct {
	uc       usecase.ApplicationUsecase
	validate *validator.Validate
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, validate: validator.New()}
}

// RegisterJobRoutes mounts the per-job application endpoints on the
// jobs group.
func (h *ApplicationHandler) RegisterJobRoutes(r fiber.Router, auth, seeker, employer fiber.Handler) {
	r.Post("/:id/apply", h.Apply, auth, seeker)
	r.Get("/:id/applications", h.ListForJob, auth, employer)
}

// RegisterRoutes mounts the application endpoints on their own group.
func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, auth, seeker, employer fiber.Handler) {
	r.Get("/me", h.Mine, auth, seeker)
	r.Get("/:id", h.Get, auth)
	r.Patch("/:id/status", h.UpdateStatus, auth, employer)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	created, err := h.uc.Apply(c.Context(), actor, jobID, usecase.ApplyInput{
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewApplicationResponse(created))
}

func (h *ApplicationHandler) Mine(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	page, err := queryInt(c, "page", 0)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}

	items, pg, err := h.uc.MyApplications(c.Context(), actor, page, limit)
	if err != nil {
		return err
	}

	out := make([]dto.MyApplicationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewMyApplicationResponse(it))
	}
	return response.Paged(c, fiber.StatusOK, response.MessageOK, out, pg)
}

func (h *ApplicationHandler) ListForJob(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	in := usecase.JobApplicationsInput{Status: c.Query("status")}
	if in.Page, err = queryInt(c, "page", 0); err != nil {
		return err
	}
	if in.Limit, err = queryInt(c, "limit", 0); err != nil {
		return err
	}

	items, pg, err := h.uc.JobApplications(c.Context(), actor, jobID, in)
	if err != nil {
		return err
	}
	return response.Paged(c, fiber.StatusOK, response.MessageOK, receivedResponses(items), pg)
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	found, err := h.uc.GetApplication(c.Context(), actor, id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(found))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateApplicationStatusRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateApplicationStatus(c.Context(), actor, id, req.Status)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "application status updated", dto.NewApplicationResponse(updated))
}

func receivedResponses(items []application.Received) []dto.ReceivedApplicationResponse {
	out := make([]dto.ReceivedApplicationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewReceivedApplicationResponse(it))
	}
	return out
}
