package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/dto"
	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/middleware"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/response"
	"github.com/Ankit73-bit/job-portal-backend/internal/usecase"
)

type AuthHandler struct {
	uc       usecase.AuthUsecase
	validate *validator.Validate
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc, validate: validator.New()}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	usr, pair, err := h.uc.Register(c.Context(), usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.AuthResponse{
		User:         dto.NewUserResponse(usr),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	usr, pair, err := h.uc.Login(c.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AuthResponse{
		User:         dto.NewUserResponse(usr),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Refresh reads the refresh token from the Authorization header and
// issues a fresh pair.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	token, ok := middleware.BearerToken(c.Get("Authorization"))
	if !ok {
		return apperr.Unauthorized("missing bearer token")
	}

	pair, err := h.uc.Refresh(c.Context(), token)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
