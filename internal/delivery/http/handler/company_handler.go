package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/dto"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/company"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/response"
	"github.com/Ankit73-bit/job-portal-backend/internal/usecase"
)

type CompanyHandler struct {
	uc       usecase.CompanyUsecase
	validate *validator.Validate
}

func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc, validate: validator.New()}
}

// RegisterRoutes mounts the company endpoints. The literal /me route
// goes in before /:id so it is never captured as an id. Ownership on
// update and delete is enforced in the usecase.
func (h *CompanyHandler) RegisterRoutes(r fiber.Router, auth, employer fiber.Handler) {
	r.Get("/", h.List)
	r.Post("/", h.Create, auth, employer)
	r.Get("/me", h.Mine, auth, employer)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update, auth)
	r.Delete("/:id", h.Delete, auth)
}

func (h *CompanyHandler) Create(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CompanyRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	created, err := h.uc.CreateCompany(c.Context(), actor, companyInput(req))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewCompanyResponse(created))
}

func (h *CompanyHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	found, err := h.uc.GetCompany(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(found))
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	page, err := queryInt(c, "page", 0)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return err
	}

	items, pg, err := h.uc.ListCompanies(c.Context(), usecase.ListCompaniesInput{
		Name:     c.Query("name"),
		Industry: c.Query("industry"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}
	return response.Paged(c, fiber.StatusOK, response.MessageOK, companyResponses(items), pg)
}

func (h *CompanyHandler) Mine(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	found, err := h.uc.MyCompany(c.Context(), actor)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(found))
}

func (h *CompanyHandler) Update(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CompanyRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateCompany(c.Context(), actor, id, companyInput(req))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(updated))
}

func (h *CompanyHandler) Delete(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCompany(c.Context(), actor, id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "company deleted", nil)
}

func companyInput(req dto.CompanyRequest) usecase.CompanyInput {
	return usecase.CompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Industry:    req.Industry,
		Size:        req.Size,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
		FoundedAt:   req.FoundedAt,
	}
}

func companyResponses(items []company.Company) []dto.CompanyResponse {
	out := make([]dto.CompanyResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewCompanyResponse(it))
	}
	return out
}
