package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/category"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/repository"
)

type CategoryInput struct {
	Name        string
	Slug        string
	Description string
}

type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]category.WithJobCount, error)
	GetCategory(ctx context.Context, id uuid.UUID) (category.Category, error)
	CreateCategory(ctx context.Context, actor Actor, in CategoryInput) (category.Category, error)
	UpdateCategory(ctx context.Context, actor Actor, id uuid.UUID, in CategoryInput) (category.Category, error)
	DeleteCategory(ctx context.Context, actor Actor, id uuid.UUID) error
}

type Category struct {
	categories repository.CategoryRepository
	jobs       repository.JobRepository
	now        func() time.Time
}

func NewCategoryUsecase(categories repository.CategoryRepository, jobs repository.JobRepository) *Category {
	return &Category{categories: categories, jobs: jobs, now: time.Now}
}

func (u *Category) ListCategories(ctx context.Context) ([]category.WithJobCount, error) {
	items, err := u.categories.GetAllWithJobCounts(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (u *Category) GetCategory(ctx context.Context, id uuid.UUID) (category.Category, error) {
	c, err := u.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return category.Category{}, apperr.NotFound("category not found")
		}
		return category.Category{}, apperr.Internal(err)
	}
	return c, nil
}

func (u *Category) CreateCategory(ctx context.Context, actor Actor, in CategoryInput) (category.Category, error) {
	if actor.Role != user.RoleAdmin {
		return category.Category{}, apperr.Forbidden("admin access required")
	}
	name, slug, err := normalizeCategory(in)
	if err != nil {
		return category.Category{}, err
	}

	c := category.Category{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slug,
		Description: in.Description,
		CreatedAt:   u.now(),
	}
	if err := u.categories.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrCategoryNameTaken) {
			return category.Category{}, apperr.Conflict("category name or slug already exists")
		}
		return category.Category{}, apperr.Internal(err)
	}
	return c, nil
}

func (u *Category) UpdateCategory(ctx context.Context, actor Actor, id uuid.UUID, in CategoryInput) (category.Category, error) {
	if actor.Role != user.RoleAdmin {
		return category.Category{}, apperr.Forbidden("admin access required")
	}
	c, err := u.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return category.Category{}, apperr.NotFound("category not found")
		}
		return category.Category{}, apperr.Internal(err)
	}

	name, slug, err := normalizeCategory(in)
	if err != nil {
		return category.Category{}, err
	}
	c.Name = name
	c.Slug = slug
	c.Description = in.Description

	if err := u.categories.Update(ctx, c); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNameTaken):
			return category.Category{}, apperr.Conflict("category name or slug already exists")
		case errors.Is(err, repository.ErrCategoryNotFound):
			return category.Category{}, apperr.NotFound("category not found")
		}
		return category.Category{}, apperr.Internal(err)
	}
	return c, nil
}

func (u *Category) DeleteCategory(ctx context.Context, actor Actor, id uuid.UUID) error {
	if actor.Role != user.RoleAdmin {
		return apperr.Forbidden("admin access required")
	}

	n, err := u.jobs.CountByCategory(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if n > 0 {
		return apperr.InvalidInput("category is still referenced by jobs")
	}

	if err := u.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return apperr.NotFound("category not found")
		}
		return apperr.Internal(err)
	}
	return nil
}

func normalizeCategory(in CategoryInput) (name, slug string, err error) {
	name = strings.TrimSpace(in.Name)
	if name == "" {
		return "", "", apperr.InvalidInput("category name is required")
	}
	slug = strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = slugify(name)
	} else {
		slug = slugify(slug)
	}
	if slug == "" {
		return "", "", apperr.InvalidInput("category slug is required")
	}
	return name, slug, nil
}

// slugify keeps lowercase alphanumerics and joins runs of anything else
// with a single hyphen.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	hyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		case b.Len() > 0 && !hyphen:
			b.WriteByte('-')
			hyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
