package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/dto"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/skill"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/response"
	"github.com/Ankit73-bit/job-portal-backend/internal/usecase"
)

type UserSkillHandler struct {
	uc       usecase.UserSkillUsecase
	validate *validator.Validate
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc, validate: validator.New()}
}

func (h *UserSkillHandler) RegisterRoutes(r fiber.Router, auth, seeker fiber.Handler) {
	r.Get("/me/skills", h.List, auth, seeker)
	r.Post("/me/skills", h.Add, auth, seeker)
	r.Put("/me/skills", h.Replace, auth, seeker)
	r.Delete("/me/skills/:skillId", h.Remove, auth, seeker)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListUserSkills(c.Context(), actor.ID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, userSkillResponses(items))
}

func (h *UserSkillHandler) Add(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.UserSkillRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	items, err := h.uc.AddUserSkill(c.Context(), actor.ID, usecase.UserSkillInput{
		SkillID:          req.SkillID,
		ProficiencyLevel: req.ProficiencyLevel,
		YearsExperience:  req.YearsExperience,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, userSkillResponses(items))
}

// Replace swaps the whole skill set in one call so clients can submit the
// profile form without diffing against the server state.
func (h *UserSkillHandler) Replace(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.ReplaceUserSkillsRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	in := make([]usecase.UserSkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		in = append(in, usecase.UserSkillInput{
			SkillID:          s.SkillID,
			ProficiencyLevel: s.ProficiencyLevel,
			YearsExperience:  s.YearsExperience,
		})
	}

	items, err := h.uc.ReplaceUserSkills(c.Context(), actor.ID, in)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, userSkillResponses(items))
}

func (h *UserSkillHandler) Remove(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	skillID, err := uuidParam(c, "skillId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveUserSkill(c.Context(), actor.ID, skillID); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "skill removed", nil)
}

func userSkillResponses(items []skill.UserSkillDetail) []dto.UserSkillResponse {
	out := make([]dto.UserSkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewUserSkillResponse(it))
	}
	return out
}
