package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/dto"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/response"
	"github.com/Ankit73-bit/job-portal-backend/internal/usecase"
)

type CategoryHandler struct {
	uc       usecase.CategoryUsecase
	validate *validator.Validate
}

func NewCategoryHandler(uc usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc, validate: validator.New()}
}

func (h *CategoryHandler) RegisterRoutes(r fiber.Router, auth, admin fiber.Handler) {
	r.Get("/", h.List)
	r.Post("/", h.Create, auth, admin)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update, auth, admin)
	r.Delete("/:id", h.Delete, auth, admin)
}

func (h *CategoryHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.CategoryWithJobsResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewCategoryWithJobsResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CategoryHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	found, err := h.uc.GetCategory(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryResponse(found))
}

func (h *CategoryHandler) Create(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	created, err := h.uc.CreateCategory(c.Context(), actor, usecase.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewCategoryResponse(created))
}

func (h *CategoryHandler) Update(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateCategory(c.Context(), actor, id, usecase.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryResponse(updated))
}

func (h *CategoryHandler) Delete(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Context(), actor, id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "category deleted", nil)
}
