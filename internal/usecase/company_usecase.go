package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/company"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/pagination"
	"github.com/Ankit73-bit/job-portal-backend/internal/repository"
)

type CompanyInput struct {
	Name        string
	Description string
	Website     string
	Industry    string
	Size        string
	Location    string
	LogoURL     string
	FoundedAt   *time.Time
}

type ListCompaniesInput struct {
	Name     string
	Industry string
	Page     int
	Limit    int
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, actor Actor, in CompanyInput) (company.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (company.Company, error)
	ListCompanies(ctx context.Context, in ListCompaniesInput) ([]company.Company, pagination.Pagination, error)
	MyCompany(ctx context.Context, actor Actor) (company.Company, error)
	UpdateCompany(ctx context.Context, actor Actor, id uuid.UUID, in CompanyInput) (company.Company, error)
	DeleteCompany(ctx context.Context, actor Actor, id uuid.UUID) error
}

type Company struct {
	companies repository.CompanyRepository
	jobs      repository.JobRepository
	now       func() time.Time
}

func NewCompanyUsecase(companies repository.CompanyRepository, jobs repository.JobRepository) *Company {
	return &Company{companies: companies, jobs: jobs, now: time.Now}
}

func (u *Company) CreateCompany(ctx context.Context, actor Actor, in CompanyInput) (company.Company, error) {
	if actor.Role != user.RoleEmployer {
		return company.Company{}, apperr.Forbidden("only employers can create a company")
	}
	if err := u.validate(&in); err != nil {
		return company.Company{}, err
	}

	now := u.now()
	c := company.Company{
		ID:          uuid.New(),
		OwnerID:     actor.ID,
		Name:        in.Name,
		Description: in.Description,
		Website:     in.Website,
		Industry:    in.Industry,
		Size:        company.Size(in.Size),
		Location:    in.Location,
		LogoURL:     in.LogoURL,
		FoundedAt:   in.FoundedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.companies.Create(ctx, c); err != nil {
		switch {
		case errors.Is(err, repository.ErrCompanyNameTaken):
			return company.Company{}, apperr.Conflict("company name already exists")
		case errors.Is(err, repository.ErrCompanyOwnerTaken):
			return company.Company{}, apperr.Conflict("you already have a company")
		}
		return company.Company{}, apperr.Internal(err)
	}
	return c, nil
}

func (u *Company) GetCompany(ctx context.Context, id uuid.UUID) (company.Company, error) {
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return company.Company{}, apperr.NotFound("company not found")
		}
		return company.Company{}, apperr.Internal(err)
	}
	return c, nil
}

func (u *Company) ListCompanies(ctx context.Context, in ListCompaniesInput) ([]company.Company, pagination.Pagination, error) {
	p := pagination.Clamp(in.Page, in.Limit)
	f := repository.CompanyFilter{
		Name:     strings.TrimSpace(in.Name),
		Industry: strings.TrimSpace(in.Industry),
	}

	items, total, err := u.companies.List(ctx, f, p)
	if err != nil {
		return nil, pagination.Pagination{}, apperr.Internal(err)
	}
	return items, pagination.New(total, p), nil
}

func (u *Company) MyCompany(ctx context.Context, actor Actor) (company.Company, error) {
	c, err := u.companies.GetByOwner(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return company.Company{}, apperr.NotFound("you do not have a company yet")
		}
		return company.Company{}, apperr.Internal(err)
	}
	return c, nil
}

func (u *Company) UpdateCompany(ctx context.Context, actor Actor, id uuid.UUID, in CompanyInput) (company.Company, error) {
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return company.Company{}, apperr.NotFound("company not found")
		}
		return company.Company{}, apperr.Internal(err)
	}
	if c.OwnerID != actor.ID {
		return company.Company{}, apperr.Forbidden("you do not own this company")
	}
	if err := u.validate(&in); err != nil {
		return company.Company{}, err
	}

	c.Name = in.Name
	c.Description = in.Description
	c.Website = in.Website
	c.Industry = in.Industry
	c.Size = company.Size(in.Size)
	c.Location = in.Location
	c.LogoURL = in.LogoURL
	c.FoundedAt = in.FoundedAt
	c.UpdatedAt = u.now()

	if err := u.companies.Update(ctx, c); err != nil {
		switch {
		case errors.Is(err, repository.ErrCompanyNameTaken):
			return company.Company{}, apperr.Conflict("company name already exists")
		case errors.Is(err, repository.ErrCompanyNotFound):
			return company.Company{}, apperr.NotFound("company not found")
		}
		return company.Company{}, apperr.Internal(err)
	}
	return c, nil
}

// DeleteCompany refuses while postings exist, mirroring the
// reference-data rule: close or delete the jobs first.
func (u *Company) DeleteCompany(ctx context.Context, actor Actor, id uuid.UUID) error {
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return apperr.NotFound("company not found")
		}
		return apperr.Internal(err)
	}
	if c.OwnerID != actor.ID {
		return apperr.Forbidden("you do not own this company")
	}

	n, err := u.jobs.CountByCompany(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if n > 0 {
		return apperr.InvalidInput("company still has jobs; delete them first")
	}

	if err := u.companies.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return apperr.NotFound("company not found")
		}
		return apperr.Internal(err)
	}
	return nil
}

func (u *Company) validate(in *CompanyInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return apperr.InvalidInput("company name is required")
	}
	if !company.Size(in.Size).Valid() {
		return apperr.InvalidInput("invalid company size")
	}
	if in.FoundedAt != nil && in.FoundedAt.After(u.now()) {
		return apperr.InvalidInput("founded date cannot be in the future")
	}
	return nil
}
