package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/category"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name or slug already exists")
)

type CategoryRepository interface {
	Create(ctx context.Context, c category.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (category.Category, error)
	GetAll(ctx context.Context) ([]category.Category, error)
	GetAllWithJobCounts(ctx context.Context) ([]category.WithJobCount, error)
	Update(ctx context.Context, c category.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCategoryRepository struct {
	db database.DB
}

func NewPostgresCategoryRepository(db database.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(ctx context.Context, c category.Category) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO categories (id, name, slug, description, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Slug, c.Description, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCategoryNameTaken
		}
		return err
	}
	return nil
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (category.Category, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, slug, description, created_at FROM categories WHERE id = $1`,
		id,
	)

	var c category.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return category.Category{}, ErrCategoryNotFound
		}
		return category.Category{}, err
	}
	return c, nil
}

func (r *PostgresCategoryRepository) GetAll(ctx context.Context) ([]category.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, slug, description, created_at FROM categories ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]category.Category, 0)
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllWithJobCounts counts only published jobs so the public listing
// reflects what a seeker can actually browse.
func (r *PostgresCategoryRepository) GetAllWithJobCounts(ctx context.Context) ([]category.WithJobCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.name, c.slug, c.description, c.created_at,
		        COUNT(j.id) FILTER (WHERE j.status = 'PUBLISHED') AS published_jobs
		 FROM categories c
		 LEFT JOIN jobs j ON j.category_id = c.id
		 GROUP BY c.id
		 ORDER BY c.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]category.WithJobCount, 0)
	for rows.Next() {
		var c category.WithJobCount
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.PublishedJobs); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, c category.Category) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $1, slug = $2, description = $3 WHERE id = $4`,
		c.Name, c.Slug, c.Description, c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCategoryNameTaken
		}
		return err
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *PostgresCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
