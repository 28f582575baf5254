package handler

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/dto"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/response"
	"github.com/Ankit73-bit/job-portal-backend/internal/usecase"
)

type JobHandler struct {
	uc       usecase.JobUsecase
	validate *validator.Validate
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc, validate: validator.New()}
}

// RegisterRoutes mounts the job endpoints. Literal paths go in before
// the /:id routes so /my, /stats and /search are never captured as ids.
func (h *JobHandler) RegisterRoutes(r fiber.Router, auth, employer, admin fiber.Handler) {
	r.Get("/", h.Search)
	r.Get("/search", h.Search)
	r.Post("/", h.Create, auth, employer)
	r.Get("/my", h.Mine, auth, employer)
	r.Get("/stats", h.Stats, auth, employer)
	r.Post("/expire-sweep", h.ExpireSweep, auth, admin)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update, auth, employer)
	r.Post("/:id/publish", h.Publish, auth, employer)
	r.Post("/:id/close", h.Close, auth, employer)
	r.Delete("/:id", h.Delete, auth, employer)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	created, err := h.uc.CreateJob(c.Context(), actor, jobInput(req))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewJobDetailResponse(created.Listing, created.Skills))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	found, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobDetailResponse(found.Listing, found.Skills))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateJob(c.Context(), actor, id, jobInput(req))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobDetailResponse(updated.Listing, updated.Skills))
}

func (h *JobHandler) Publish(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	published, err := h.uc.PublishJob(c.Context(), actor, id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "job published", dto.NewJobResponse(published))
}

func (h *JobHandler) Close(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	closed, err := h.uc.CloseJob(c.Context(), actor, id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "job closed", dto.NewJobResponse(closed))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteJob(c.Context(), actor, id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "job deleted", nil)
}

// Search serves both the plain listing and the filtered search; every
// filter arrives as a flat query string and is coerced here before the
// usecase compiles it.
func (h *JobHandler) Search(c fiber.Ctx) error {
	in := usecase.SearchJobsInput{
		Search:          c.Query("search"),
		Type:            c.Query("type"),
		ExperienceLevel: c.Query("experienceLevel"),
		Location:        c.Query("location"),
		SortBy:          c.Query("sortBy"),
		SortOrder:       c.Query("sortOrder"),
	}

	var err error
	if in.CategoryID, err = queryUUID(c, "categoryId"); err != nil {
		return err
	}
	if in.IsRemote, err = queryBool(c, "isRemote"); err != nil {
		return err
	}
	if in.SalaryMin, err = queryFloat(c, "salaryMin"); err != nil {
		return err
	}
	if in.SalaryMax, err = queryFloat(c, "salaryMax"); err != nil {
		return err
	}
	if in.SkillIDs, err = parseSkillIDs(c.Query("skills")); err != nil {
		return err
	}
	if in.Page, err = queryInt(c, "page", 0); err != nil {
		return err
	}
	if in.Limit, err = queryInt(c, "limit", 0); err != nil {
		return err
	}

	items, pg, err := h.uc.SearchJobs(c.Context(), in)
	if err != nil {
		return err
	}
	return response.Paged(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(items), pg)
}

func (h *JobHandler) Mine(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	in := usecase.MyJobsInput{Status: c.Query("status")}
	if in.Page, err = queryInt(c, "page", 0); err != nil {
		return err
	}
	if in.Limit, err = queryInt(c, "limit", 0); err != nil {
		return err
	}

	items, pg, err := h.uc.MyJobs(c.Context(), actor, in)
	if err != nil {
		return err
	}
	return response.Paged(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(items), pg)
}

func (h *JobHandler) Stats(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.CompanyJobStats(c.Context(), actor)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobStatsResponse(stats))
}

func (h *JobHandler) ExpireSweep(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}

	expired, err := h.uc.ExpireOldJobs(c.Context(), actor)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "expiry sweep complete", dto.ExpireSweepResponse{Expired: expired})
}

func jobInput(req dto.JobRequest) usecase.JobInput {
	in := usecase.JobInput{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Type:             req.Type,
		ExperienceLevel:  req.ExperienceLevel,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Currency:         req.Currency,
		Location:         req.Location,
		IsRemote:         req.IsRemote,
		ApplicationEmail: req.ApplicationEmail,
		ApplicationURL:   req.ApplicationURL,
		CategoryID:       req.CategoryID,
		ExpiresAt:        req.ExpiresAt,
	}
	// A request without a skills key keeps the current associations,
	// so the slice's nil-ness has to survive the conversion.
	if req.Skills != nil {
		in.Skills = make([]usecase.JobSkillInput, 0, len(req.Skills))
		for _, s := range req.Skills {
			in.Skills = append(in.Skills, usecase.JobSkillInput{SkillID: s.SkillID, IsRequired: s.IsRequired})
		}
	}
	return in
}

func parseSkillIDs(s string) ([]uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, apperr.InvalidInput("invalid skill id in skills filter")
		}
		out = append(out, id)
	}
	return out, nil
}
