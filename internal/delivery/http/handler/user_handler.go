package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/dto"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/response"
	"github.com/Ankit73-bit/job-portal-backend/internal/usecase"
)

type UserHandler struct {
	uc       usecase.UserUsecase
	validate *validator.Validate
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc, validate: validator.New()}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Get("/me", h.Me, auth)
	r.Put("/me", h.UpdateAccount, auth)
	r.Delete("/me", h.Deactivate, auth)
	r.Get("/me/profile", h.Profile, auth)
	r.Put("/me/profile", h.UpdateProfile, auth)
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	usr, profile, err := h.uc.GetMe(c.Context(), actor.ID)
	if err != nil {
		return err
	}

	data := map[string]any{
		"user":    dto.NewUserResponse(usr),
		"profile": dto.NewProfileResponse(profile),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *UserHandler) UpdateAccount(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.UpdateAccountRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	usr, err := h.uc.UpdateAccount(c.Context(), actor.ID, usecase.UpdateAccountInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) Deactivate(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	if err := h.uc.Deactivate(c.Context(), actor.ID); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "account deactivated", nil)
}

func (h *UserHandler) Profile(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Context(), actor.ID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(profile))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	profile, err := h.uc.UpdateProfile(c.Context(), actor.ID, usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
		ResumeURL: req.ResumeURL,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(profile))
}
