package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/company"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/pagination"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrCompanyNameTaken  = errors.New("company name already exists")
	ErrCompanyOwnerTaken = errors.New("owner already has a company")
)

// CompanyFilter narrows the public company listing. Empty fields are
// not applied.
type CompanyFilter struct {
	Name     string
	Industry string
}

type CompanyRepository interface {
	Create(ctx context.Context, c company.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (company.Company, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (company.Company, error)
	List(ctx context.Context, f CompanyFilter, p pagination.Params) ([]company.Company, int, error)
	Update(ctx context.Context, c company.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `id, owner_id, name, description, website, industry, size,
	        location, logo_url, founded_at, created_at, updated_at`

func scanCompany(s rowScanner) (company.Company, error) {
	var (
		c         company.Company
		foundedAt sql.NullTime
	)
	err := s.Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Description, &c.Website, &c.Industry, &c.Size,
		&c.Location, &c.LogoURL, &foundedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return company.Company{}, err
	}
	if foundedAt.Valid {
		v := foundedAt.Time
		c.FoundedAt = &v
	}
	return c, nil
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c company.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, owner_id, name, description, website, industry, size,
		                        location, logo_url, founded_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.OwnerID, c.Name, c.Description, c.Website, c.Industry, c.Size,
		c.Location, c.LogoURL, c.FoundedAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if constraint, ok := uniqueViolationConstraint(err); ok {
			if constraint == "companies_name_unique" {
				return ErrCompanyNameTaken
			}
			return ErrCompanyOwnerTaken
		}
		return err
	}
	return nil
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`,
		id,
	)

	c, err := scanCompany(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

func (r *PostgresCompanyRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE owner_id = $1`,
		ownerID,
	)

	c, err := scanCompany(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

func (r *PostgresCompanyRepository) List(ctx context.Context, f CompanyFilter, p pagination.Params) ([]company.Company, int, error) {
	where := ` WHERE 1=1`
	args := make([]any, 0, 4)
	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		where += ` AND name ILIKE $` + strconv.Itoa(len(args))
	}
	if f.Industry != "" {
		args = append(args, f.Industry)
		where += ` AND lower(industry) = lower($` + strconv.Itoa(len(args)) + `)`
	}

	countArgs := make([]any, len(args))
	copy(countArgs, args)

	args = append(args, p.Limit)
	limitPh := `$` + strconv.Itoa(len(args))
	args = append(args, p.Offset())
	offsetPh := `$` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+`
		 FROM companies`+where+`
		 ORDER BY name ASC
		 LIMIT `+limitPh+` OFFSET `+offsetPh,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]company.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM companies`+where, countArgs...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, c company.Company) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE companies
		 SET name = $1, description = $2, website = $3, industry = $4, size = $5,
		     location = $6, logo_url = $7, founded_at = $8, updated_at = $9
		 WHERE id = $10`,
		c.Name, c.Description, c.Website, c.Industry, c.Size,
		c.Location, c.LogoURL, c.FoundedAt, c.UpdatedAt,
		c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCompanyNameTaken
		}
		return err
	}
	if rowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *PostgresCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
