package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/job"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/skill"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/pagination"
	"github.com/Ankit73-bit/job-portal-backend/internal/repository"
	"github.com/Ankit73-bit/job-portal-backend/internal/search"
)

type JobInput struct {
	Title            string
	Description      string
	Requirements     string
	Responsibilities string
	Type             string
	ExperienceLevel  string
	SalaryMin        *float64
	SalaryMax        *float64
	Currency         string
	Location         string
	IsRemote         bool
	ApplicationEmail string
	ApplicationURL   string
	CategoryID       *uuid.UUID
	ExpiresAt        *time.Time
	// Skills nil leaves the current associations alone on update; an
	// empty non-nil slice clears them.
	Skills []JobSkillInput
}

type JobSkillInput struct {
	SkillID    uuid.UUID
	IsRequired bool
}

type SearchJobsInput struct {
	Search          string
	CategoryID      *uuid.UUID
	Type            string
	ExperienceLevel string
	Location        string
	IsRemote        *bool
	SalaryMin       *float64
	SalaryMax       *float64
	SkillIDs        []uuid.UUID
	SortBy          string
	SortOrder       string
	Page            int
	Limit           int
}

type MyJobsInput struct {
	Status string
	Page   int
	Limit  int
}

// JobDetail is a listing plus its skill associations, the shape the
// detail endpoint returns.
type JobDetail struct {
	job.Listing
	Skills []skill.JobSkillDetail
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actor Actor, in JobInput) (JobDetail, error)
	GetJob(ctx context.Context, id uuid.UUID) (JobDetail, error)
	UpdateJob(ctx context.Context, actor Actor, id uuid.UUID, in JobInput) (JobDetail, error)
	PublishJob(ctx context.Context, actor Actor, id uuid.UUID) (job.Listing, error)
	CloseJob(ctx context.Context, actor Actor, id uuid.UUID) (job.Listing, error)
	DeleteJob(ctx context.Context, actor Actor, id uuid.UUID) error
	SearchJobs(ctx context.Context, in SearchJobsInput) ([]job.Listing, pagination.Pagination, error)
	MyJobs(ctx context.Context, actor Actor, in MyJobsInput) ([]job.Listing, pagination.Pagination, error)
	CompanyJobStats(ctx context.Context, actor Actor) (job.Stats, error)
	ExpireOldJobs(ctx context.Context, actor Actor) (int64, error)
}

type Job struct {
	jobs       repository.JobRepository
	jobSkills  repository.JobSkillRepository
	companies  repository.CompanyRepository
	categories repository.CategoryRepository
	skills     repository.SkillRepository
	apps       repository.ApplicationRepository
	now        func() time.Time
}

func NewJobUsecase(
	jobs repository.JobRepository,
	jobSkills repository.JobSkillRepository,
	companies repository.CompanyRepository,
	categories repository.CategoryRepository,
	skills repository.SkillRepository,
	apps repository.ApplicationRepository,
) *Job {
	return &Job{
		jobs:       jobs,
		jobSkills:  jobSkills,
		companies:  companies,
		categories: categories,
		skills:     skills,
		apps:       apps,
		now:        time.Now,
	}
}

func (u *Job) CreateJob(ctx context.Context, actor Actor, in JobInput) (JobDetail, error) {
	if actor.Role != user.RoleEmployer {
		return JobDetail{}, apperr.Forbidden("only employers can post jobs")
	}

	c, err := u.companies.GetByOwner(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return JobDetail{}, apperr.InvalidInput("create a company before posting jobs")
		}
		return JobDetail{}, apperr.Internal(err)
	}

	if err := u.validateJob(ctx, &in); err != nil {
		return JobDetail{}, err
	}

	now := u.now()
	j := job.Job{
		ID:               uuid.New(),
		CompanyID:        c.ID,
		PostedBy:         actor.ID,
		CategoryID:       in.CategoryID,
		Title:            in.Title,
		Description:      in.Description,
		Requirements:     in.Requirements,
		Responsibilities: in.Responsibilities,
		Type:             job.Type(in.Type),
		ExperienceLevel:  job.ExperienceLevel(in.ExperienceLevel),
		SalaryMin:        in.SalaryMin,
		SalaryMax:        in.SalaryMax,
		Currency:         in.Currency,
		Location:         in.Location,
		IsRemote:         in.IsRemote,
		ApplicationEmail: in.ApplicationEmail,
		ApplicationURL:   in.ApplicationURL,
		Status:           job.StatusDraft,
		ExpiresAt:        in.ExpiresAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := u.jobs.Create(ctx, j, buildJobSkills(j.ID, in.Skills, now)); err != nil {
		return JobDetail{}, apperr.Internal(err)
	}
	return u.GetJob(ctx, j.ID)
}

func (u *Job) GetJob(ctx context.Context, id uuid.UUID) (JobDetail, error) {
	listing, err := u.jobs.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return JobDetail{}, apperr.NotFound("job not found")
		}
		return JobDetail{}, apperr.Internal(err)
	}

	skills, err := u.jobSkills.FindByJobID(ctx, id)
	if err != nil {
		return JobDetail{}, apperr.Internal(err)
	}
	return JobDetail{Listing: listing, Skills: skills}, nil
}

func (u *Job) UpdateJob(ctx context.Context, actor Actor, id uuid.UUID, in JobInput) (JobDetail, error) {
	j, err := u.ownedJob(ctx, actor, id)
	if err != nil {
		return JobDetail{}, err
	}
	if err := u.validateJob(ctx, &in); err != nil {
		return JobDetail{}, err
	}

	now := u.now()
	j.CategoryID = in.CategoryID
	j.Title = in.Title
	j.Description = in.Description
	j.Requirements = in.Requirements
	j.Responsibilities = in.Responsibilities
	j.Type = job.Type(in.Type)
	j.ExperienceLevel = job.ExperienceLevel(in.ExperienceLevel)
	j.SalaryMin = in.SalaryMin
	j.SalaryMax = in.SalaryMax
	j.Currency = in.Currency
	j.Location = in.Location
	j.IsRemote = in.IsRemote
	j.ApplicationEmail = in.ApplicationEmail
	j.ApplicationURL = in.ApplicationURL
	j.ExpiresAt = in.ExpiresAt
	j.UpdatedAt = now

	replaceSkills := in.Skills != nil
	if err := u.jobs.Update(ctx, j, buildJobSkills(j.ID, in.Skills, now), replaceSkills); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return JobDetail{}, apperr.NotFound("job not found")
		}
		return JobDetail{}, apperr.Internal(err)
	}
	return u.GetJob(ctx, id)
}

func (u *Job) PublishJob(ctx context.Context, actor Actor, id uuid.UUID) (job.Listing, error) {
	j, err := u.ownedJob(ctx, actor, id)
	if err != nil {
		return job.Listing{}, err
	}
	if j.Status == job.StatusPublished {
		return job.Listing{}, apperr.InvalidInput("job is already published")
	}
	return u.setStatus(ctx, id, job.StatusPublished)
}

func (u *Job) CloseJob(ctx context.Context, actor Actor, id uuid.UUID) (job.Listing, error) {
	j, err := u.ownedJob(ctx, actor, id)
	if err != nil {
		return job.Listing{}, err
	}
	if j.Status == job.StatusClosed {
		return job.Listing{}, apperr.InvalidInput("job is already closed")
	}
	return u.setStatus(ctx, id, job.StatusClosed)
}

// DeleteJob hard-deletes only unapplied postings; anything with an
// application history must be closed instead so the records survive.
func (u *Job) DeleteJob(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := u.ownedJob(ctx, actor, id); err != nil {
		return err
	}

	n, err := u.apps.CountByJob(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if n > 0 {
		return apperr.InvalidInput("job has applications; close it instead")
	}

	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return apperr.NotFound("job not found")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (u *Job) SearchJobs(ctx context.Context, in SearchJobsInput) ([]job.Listing, pagination.Pagination, error) {
	if in.Type != "" && !job.Type(in.Type).Valid() {
		return nil, pagination.Pagination{}, apperr.InvalidInput("invalid job type")
	}
	if in.ExperienceLevel != "" && !job.ExperienceLevel(in.ExperienceLevel).Valid() {
		return nil, pagination.Pagination{}, apperr.InvalidInput("invalid experience level")
	}

	f := search.Filter{
		Search:          in.Search,
		CategoryID:      in.CategoryID,
		Type:            in.Type,
		ExperienceLevel: in.ExperienceLevel,
		Location:        in.Location,
		IsRemote:        in.IsRemote,
		SalaryMin:       in.SalaryMin,
		SalaryMax:       in.SalaryMax,
		SkillIDs:        in.SkillIDs,
	}
	s := search.Sort{By: in.SortBy, Order: in.SortOrder}

	q := search.Compile(f, s, u.now())
	p := pagination.Clamp(in.Page, in.Limit)

	items, total, err := u.jobs.Search(ctx, q, p)
	if err != nil {
		return nil, pagination.Pagination{}, apperr.Internal(err)
	}
	return items, pagination.New(total, p), nil
}

func (u *Job) MyJobs(ctx context.Context, actor Actor, in MyJobsInput) ([]job.Listing, pagination.Pagination, error) {
	if actor.Role != user.RoleEmployer {
		return nil, pagination.Pagination{}, apperr.Forbidden("only employers have job postings")
	}
	c, err := u.companies.GetByOwner(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, pagination.Pagination{}, apperr.NotFound("you do not have a company yet")
		}
		return nil, pagination.Pagination{}, apperr.Internal(err)
	}

	status := job.Status(strings.TrimSpace(in.Status))
	if status != "" && !status.Valid() {
		return nil, pagination.Pagination{}, apperr.InvalidInput("invalid job status")
	}

	p := pagination.Clamp(in.Page, in.Limit)
	items, total, err := u.jobs.ListByCompany(ctx, c.ID, status, p)
	if err != nil {
		return nil, pagination.Pagination{}, apperr.Internal(err)
	}
	return items, pagination.New(total, p), nil
}

func (u *Job) CompanyJobStats(ctx context.Context, actor Actor) (job.Stats, error) {
	if actor.Role != user.RoleEmployer {
		return job.Stats{}, apperr.Forbidden("only employers have job statistics")
	}
	c, err := u.companies.GetByOwner(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return job.Stats{}, apperr.NotFound("you do not have a company yet")
		}
		return job.Stats{}, apperr.Internal(err)
	}

	stats, err := u.jobs.Stats(ctx, c.ID)
	if err != nil {
		return job.Stats{}, apperr.Internal(err)
	}
	return stats, nil
}

// ExpireOldJobs flips every published job whose expiry has passed. The
// sweep is a single batch update and safe to run repeatedly.
func (u *Job) ExpireOldJobs(ctx context.Context, actor Actor) (int64, error) {
	if actor.Role != user.RoleAdmin {
		return 0, apperr.Forbidden("admin access required")
	}

	n, err := u.jobs.ExpireOld(ctx, u.now())
	if err != nil {
		return 0, apperr.Internal(err)
	}
	return n, nil
}

// ownedJob loads the job and confirms the actor owns its company.
func (u *Job) ownedJob(ctx context.Context, actor Actor, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, apperr.NotFound("job not found")
		}
		return job.Job{}, apperr.Internal(err)
	}

	c, err := u.companies.GetByID(ctx, j.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return job.Job{}, apperr.NotFound("company not found")
		}
		return job.Job{}, apperr.Internal(err)
	}
	if c.OwnerID != actor.ID {
		return job.Job{}, apperr.Forbidden("you do not own this job")
	}
	return j, nil
}

func (u *Job) setStatus(ctx context.Context, id uuid.UUID, status job.Status) (job.Listing, error) {
	if err := u.jobs.UpdateStatus(ctx, id, status, u.now()); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Listing{}, apperr.NotFound("job not found")
		}
		return job.Listing{}, apperr.Internal(err)
	}

	listing, err := u.jobs.GetListingByID(ctx, id)
	if err != nil {
		return job.Listing{}, apperr.Internal(err)
	}
	return listing, nil
}

func (u *Job) validateJob(ctx context.Context, in *JobInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return apperr.InvalidInput("job title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return apperr.InvalidInput("job description is required")
	}
	if !job.Type(in.Type).Valid() {
		return apperr.InvalidInput("invalid job type")
	}
	if !job.ExperienceLevel(in.ExperienceLevel).Valid() {
		return apperr.InvalidInput("invalid experience level")
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return apperr.InvalidInput("salaryMin cannot exceed salaryMax")
	}
	if in.ExpiresAt != nil && !in.ExpiresAt.After(u.now()) {
		return apperr.InvalidInput("expiry date must be in the future")
	}

	if in.CategoryID != nil {
		if _, err := u.categories.GetByID(ctx, *in.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return apperr.NotFound("category not found")
			}
			return apperr.Internal(err)
		}
	}

	if len(in.Skills) > 0 {
		ids := make([]uuid.UUID, 0, len(in.Skills))
		seen := make(map[uuid.UUID]bool, len(in.Skills))
		for _, s := range in.Skills {
			if s.SkillID == uuid.Nil {
				return apperr.InvalidInput("skillId is required")
			}
			if seen[s.SkillID] {
				return apperr.InvalidInput("duplicate skill in request")
			}
			seen[s.SkillID] = true
			ids = append(ids, s.SkillID)
		}

		existing, err := u.skills.ExistingIDs(ctx, ids)
		if err != nil {
			return apperr.Internal(err)
		}
		for _, id := range ids {
			if !existing[id] {
				return apperr.Newf(apperr.KindNotFound, "skill %s not found", id)
			}
		}
	}
	return nil
}

func buildJobSkills(jobID uuid.UUID, in []JobSkillInput, now time.Time) []skill.JobSkill {
	out := make([]skill.JobSkill, 0, len(in))
	for _, s := range in {
		out = append(out, skill.JobSkill{
			ID:         uuid.New(),
			JobID:      jobID,
			SkillID:    s.SkillID,
			IsRequired: s.IsRequired,
			CreatedAt:  now,
		})
	}
	return out
}
