package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/dto"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/response"
	"github.com/Ankit73-bit/job-portal-backend/internal/usecase"
)

type SkillHandler struct {
	uc       usecase.SkillUsecase
	validate *validator.Validate
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc, validate: validator.New()}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router, auth, admin fiber.Handler) {
	r.Get("/", h.List)
	r.Post("/", h.Create, auth, admin)
	r.Delete("/:id", h.Delete, auth, admin)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context(), c.Query("search"))
	if err != nil {
		return err
	}

	out := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateSkillRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	created, err := h.uc.CreateSkill(c.Context(), actor, req.Name)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewSkillResponse(created))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSkill(c.Context(), actor, id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "skill deleted", nil)
}
