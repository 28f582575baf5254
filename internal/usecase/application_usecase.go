package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/application"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/job"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/pagination"
	"github.com/Ankit73-bit/job-portal-backend/internal/repository"
)

type ApplyInput struct {
	CoverLetter string
	ResumeURL   string
}

type JobApplicationsInput struct {
	Status string
	Page   int
	Limit  int
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, actor Actor, jobID uuid.UUID, in ApplyInput) (application.Application, error)
	MyApplications(ctx context.Context, actor Actor, page, limit int) ([]application.Detail, pagination.Pagination, error)
	JobApplications(ctx context.Context, actor Actor, jobID uuid.UUID, in JobApplicationsInput) ([]application.Received, pagination.Pagination, error)
	GetApplication(ctx context.Context, actor Actor, id uuid.UUID) (application.Application, error)
	UpdateApplicationStatus(ctx context.Context, actor Actor, id uuid.UUID, status string) (application.Application, error)
}

type Application struct {
	apps      repository.ApplicationRepository
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	now       func() time.Time
}

func NewApplicationUsecase(
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	companies repository.CompanyRepository,
) *Application {
	return &Application{apps: apps, jobs: jobs, companies: companies, now: time.Now}
}

// Apply inserts a PENDING application. The duplicate pre-check only
// buys a friendlier message; the unique constraint on
// (job_id, applicant_id) is what actually prevents the double apply.
func (u *Application) Apply(ctx context.Context, actor Actor, jobID uuid.UUID, in ApplyInput) (application.Application, error) {
	if actor.Role != user.RoleJobSeeker {
		return application.Application{}, apperr.Forbidden("only job seekers can apply")
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return application.Application{}, apperr.NotFound("job not found")
		}
		return application.Application{}, apperr.Internal(err)
	}

	now := u.now()
	if j.Status != job.StatusPublished {
		return application.Application{}, apperr.InvalidInput("job is not accepting applications")
	}
	if j.Expired(now) {
		return application.Application{}, apperr.InvalidInput("job posting has expired")
	}

	exists, err := u.apps.ExistsByJobAndApplicant(ctx, jobID, actor.ID)
	if err != nil {
		return application.Application{}, apperr.Internal(err)
	}
	if exists {
		return application.Application{}, apperr.Conflict("you have already applied to this job")
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: actor.ID,
		Status:      application.StatusPending,
		CoverLetter: in.CoverLetter,
		ResumeURL:   strings.TrimSpace(in.ResumeURL),
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.apps.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return application.Application{}, apperr.Conflict("you have already applied to this job")
		}
		return application.Application{}, apperr.Internal(err)
	}
	return a, nil
}

func (u *Application) MyApplications(ctx context.Context, actor Actor, page, limit int) ([]application.Detail, pagination.Pagination, error) {
	p := pagination.Clamp(page, limit)
	items, total, err := u.apps.ListByApplicant(ctx, actor.ID, p)
	if err != nil {
		return nil, pagination.Pagination{}, apperr.Internal(err)
	}
	return items, pagination.New(total, p), nil
}

func (u *Application) JobApplications(ctx context.Context, actor Actor, jobID uuid.UUID, in JobApplicationsInput) ([]application.Received, pagination.Pagination, error) {
	if err := u.ownsJob(ctx, actor, jobID); err != nil {
		return nil, pagination.Pagination{}, err
	}

	status := application.Status(strings.TrimSpace(in.Status))
	if status != "" && !status.Valid() {
		return nil, pagination.Pagination{}, apperr.InvalidInput("invalid application status")
	}

	p := pagination.Clamp(in.Page, in.Limit)
	items, total, err := u.apps.ListByJob(ctx, jobID, status, p)
	if err != nil {
		return nil, pagination.Pagination{}, apperr.Internal(err)
	}
	return items, pagination.New(total, p), nil
}

// GetApplication is visible to the applicant and to the owner of the
// job's company, nobody else.
func (u *Application) GetApplication(ctx context.Context, actor Actor, id uuid.UUID) (application.Application, error) {
	a, err := u.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, apperr.NotFound("application not found")
		}
		return application.Application{}, apperr.Internal(err)
	}

	if a.ApplicantID == actor.ID {
		return a, nil
	}
	if err := u.ownsJob(ctx, actor, a.JobID); err != nil {
		return application.Application{}, apperr.Forbidden("you cannot view this application")
	}
	return a, nil
}

func (u *Application) UpdateApplicationStatus(ctx context.Context, actor Actor, id uuid.UUID, status string) (application.Application, error) {
	a, err := u.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, apperr.NotFound("application not found")
		}
		return application.Application{}, apperr.Internal(err)
	}
	if err := u.ownsJob(ctx, actor, a.JobID); err != nil {
		return application.Application{}, err
	}

	next := application.Status(status)
	if !next.Valid() {
		return application.Application{}, apperr.InvalidInput("invalid application status")
	}
	if a.Status.Terminal() {
		return application.Application{}, apperr.InvalidInput("application is already finalized")
	}

	now := u.now()
	if err := u.apps.UpdateStatus(ctx, id, next, now); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, apperr.NotFound("application not found")
		}
		return application.Application{}, apperr.Internal(err)
	}

	a.Status = next
	a.UpdatedAt = now
	return a, nil
}

// ownsJob confirms the actor owns the company behind the job.
func (u *Application) ownsJob(ctx context.Context, actor Actor, jobID uuid.UUID) error {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return apperr.NotFound("job not found")
		}
		return apperr.Internal(err)
	}

	c, err := u.companies.GetByID(ctx, j.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return apperr.NotFound("company not found")
		}
		return apperr.Internal(err)
	}
	if c.OwnerID != actor.ID {
		return apperr.Forbidden("you do not own this job")
	}
	return nil
}
