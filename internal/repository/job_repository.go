package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/job"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/skill"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/pagination"
	"github.com/Ankit73-bit/job-portal-backend/internal/search"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, j job.Job, skills []skill.JobSkill) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	GetListingByID(ctx context.Context, id uuid.UUID) (job.Listing, error)
	Update(ctx context.Context, j job.Job, skills []skill.JobSkill, replaceSkills bool) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status, now time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, q search.Query, p pagination.Params) ([]job.Listing, int, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, status job.Status, p pagination.Params) ([]job.Listing, int, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
	CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error)
	Stats(ctx context.Context, companyID uuid.UUID) (job.Stats, error)
	ExpireOld(ctx context.Context, now time.Time) (int64, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobListingColumns = `j.id, j.company_id, j.posted_by, j.category_id, j.title, j.description,
	        j.requirements, j.responsibilities, j.type, j.experience_level,
	        j.salary_min, j.salary_max, j.currency, j.location, j.is_remote,
	        j.application_email, j.application_url, j.status, j.expires_at,
	        j.created_at, j.updated_at, c.name, COALESCE(cat.name, '')`

const jobListingFrom = ` FROM jobs j
	 JOIN companies c ON c.id = j.company_id
	 LEFT JOIN categories cat ON cat.id = j.category_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(s rowScanner) (job.Listing, error) {
	var (
		l          job.Listing
		categoryID uuid.NullUUID
		salaryMin  sql.NullFloat64
		salaryMax  sql.NullFloat64
		expiresAt  sql.NullTime
	)
	err := s.Scan(
		&l.ID, &l.CompanyID, &l.PostedBy, &categoryID, &l.Title, &l.Description,
		&l.Requirements, &l.Responsibilities, &l.Type, &l.ExperienceLevel,
		&salaryMin, &salaryMax, &l.Currency, &l.Location, &l.IsRemote,
		&l.ApplicationEmail, &l.ApplicationURL, &l.Status, &expiresAt,
		&l.CreatedAt, &l.UpdatedAt, &l.CompanyName, &l.CategoryName,
	)
	if err != nil {
		return job.Listing{}, err
	}
	if categoryID.Valid {
		v := categoryID.UUID
		l.CategoryID = &v
	}
	if salaryMin.Valid {
		v := salaryMin.Float64
		l.SalaryMin = &v
	}
	if salaryMax.Valid {
		v := salaryMax.Float64
		l.SalaryMax = &v
	}
	if expiresAt.Valid {
		v := expiresAt.Time
		l.ExpiresAt = &v
	}
	return l, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job, skills []skill.JobSkill) error {
	return database.WithinTx(ctx, r.db, func(tx database.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO jobs (id, company_id, posted_by, category_id, title, description,
			                   requirements, responsibilities, type, experience_level,
			                   salary_min, salary_max, currency, location, is_remote,
			                   application_email, application_url, status, expires_at,
			                   created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
			j.ID, j.CompanyID, j.PostedBy, j.CategoryID, j.Title, j.Description,
			j.Requirements, j.Responsibilities, j.Type, j.ExperienceLevel,
			j.SalaryMin, j.SalaryMax, j.Currency, j.Location, j.IsRemote,
			j.ApplicationEmail, j.ApplicationURL, j.Status, j.ExpiresAt,
			j.CreatedAt, j.UpdatedAt,
		)
		if err != nil {
			return err
		}
		return insertJobSkills(ctx, tx, skills)
	})
}

func insertJobSkills(ctx context.Context, tx database.Tx, skills []skill.JobSkill) error {
	for _, js := range skills {
		_, err := tx.Exec(ctx,
			`INSERT INTO job_skills (id, job_id, skill_id, is_required, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			js.ID, js.JobID, js.SkillID, js.IsRequired, js.CreatedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, company_id, posted_by, category_id, title, description,
		        requirements, responsibilities, type, experience_level,
		        salary_min, salary_max, currency, location, is_remote,
		        application_email, application_url, status, expires_at,
		        created_at, updated_at
		 FROM jobs
		 WHERE id = $1`,
		id,
	)

	var (
		j          job.Job
		categoryID uuid.NullUUID
		salaryMin  sql.NullFloat64
		salaryMax  sql.NullFloat64
		expiresAt  sql.NullTime
	)
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.PostedBy, &categoryID, &j.Title, &j.Description,
		&j.Requirements, &j.Responsibilities, &j.Type, &j.ExperienceLevel,
		&salaryMin, &salaryMax, &j.Currency, &j.Location, &j.IsRemote,
		&j.ApplicationEmail, &j.ApplicationURL, &j.Status, &expiresAt,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	if categoryID.Valid {
		v := categoryID.UUID
		j.CategoryID = &v
	}
	if salaryMin.Valid {
		v := salaryMin.Float64
		j.SalaryMin = &v
	}
	if salaryMax.Valid {
		v := salaryMax.Float64
		j.SalaryMax = &v
	}
	if expiresAt.Valid {
		v := expiresAt.Time
		j.ExpiresAt = &v
	}
	return j, nil
}

func (r *PostgresJobRepository) GetListingByID(ctx context.Context, id uuid.UUID) (job.Listing, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobListingColumns+jobListingFrom+`
		 WHERE j.id = $1`,
		id,
	)

	l, err := scanListing(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Listing{}, ErrJobNotFound
		}
		return job.Listing{}, err
	}
	return l, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job, skills []skill.JobSkill, replaceSkills bool) error {
	return database.WithinTx(ctx, r.db, func(tx database.Tx) error {
		rowsAffected, err := tx.Exec(ctx,
			`UPDATE jobs
			 SET category_id = $1, title = $2, description = $3, requirements = $4,
			     responsibilities = $5, type = $6, experience_level = $7,
			     salary_min = $8, salary_max = $9, currency = $10, location = $11,
			     is_remote = $12, application_email = $13, application_url = $14,
			     status = $15, expires_at = $16, updated_at = $17
			 WHERE id = $18`,
			j.CategoryID, j.Title, j.Description, j.Requirements,
			j.Responsibilities, j.Type, j.ExperienceLevel,
			j.SalaryMin, j.SalaryMax, j.Currency, j.Location,
			j.IsRemote, j.ApplicationEmail, j.ApplicationURL,
			j.Status, j.ExpiresAt, j.UpdatedAt,
			j.ID,
		)
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return ErrJobNotFound
		}

		if !replaceSkills {
			return nil
		}
		if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, j.ID); err != nil {
			return err
		}
		return insertJobSkills(ctx, tx, skills)
	})
}

func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status job.Status, now time.Time) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3`,
		status, now, id,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Search runs the compiled query as exactly two statements, a paged
// fetch and a count, sharing one rendered predicate so the total always
// describes the same universe as the page.
func (r *PostgresJobRepository) Search(ctx context.Context, q search.Query, p pagination.Params) ([]job.Listing, int, error) {
	args := &argList{}
	cond, err := renderPredicate(q.Pred, args)
	if err != nil {
		return nil, 0, err
	}

	base := jobListingFrom + `
	 WHERE ` + cond

	countArgs := make([]interface{}, len(args.args))
	copy(countArgs, args.args)

	fetchSQL := `SELECT ` + jobListingColumns + base + `
	 ORDER BY ` + renderOrder(q.Order) + `
	 LIMIT ` + args.add(p.Limit) + ` OFFSET ` + args.add(p.Offset())

	rows, err := r.db.Query(ctx, fetchSQL, args.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]job.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1)`+base, countArgs...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListByCompany returns the company's postings for the owner's
// dashboard, newest first. A non-empty status narrows the result;
// otherwise every status is included.
func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, status job.Status, p pagination.Params) ([]job.Listing, int, error) {
	where := ` WHERE j.company_id = $1`
	args := []any{companyID}
	if status != "" {
		args = append(args, status)
		where += ` AND j.status = $2`
	}

	countArgs := make([]any, len(args))
	copy(countArgs, args)

	args = append(args, p.Limit)
	limitPh := `$` + strconv.Itoa(len(args))
	args = append(args, p.Offset())
	offsetPh := `$` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx,
		`SELECT `+jobListingColumns+jobListingFrom+where+`
		 ORDER BY j.created_at DESC, j.id DESC
		 LIMIT `+limitPh+` OFFSET `+offsetPh,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]job.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs j`+where, countArgs...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresJobRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	var c int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs WHERE category_id = $1`, categoryID)
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobRepository) CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	var c int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs WHERE company_id = $1`, companyID)
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobRepository) Stats(ctx context.Context, companyID uuid.UUID) (job.Stats, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(1),
		        COUNT(1) FILTER (WHERE status = 'PUBLISHED'),
		        COUNT(1) FILTER (WHERE status = 'DRAFT'),
		        COUNT(1) FILTER (WHERE status = 'CLOSED'),
		        COUNT(1) FILTER (WHERE status = 'EXPIRED'),
		        (SELECT COUNT(1)
		         FROM applications a
		         JOIN jobs j ON j.id = a.job_id
		         WHERE j.company_id = $1)
		 FROM jobs
		 WHERE company_id = $1`,
		companyID,
	)

	var s job.Stats
	if err := row.Scan(&s.TotalJobs, &s.PublishedJobs, &s.DraftJobs, &s.ClosedJobs, &s.ExpiredJobs, &s.TotalApplications); err != nil {
		return job.Stats{}, err
	}
	return s, nil
}

// ExpireOld marks every published job whose expiry has passed. Safe to
// re-run: already-expired rows no longer match.
func (r *PostgresJobRepository) ExpireOld(ctx context.Context, now time.Time) (int64, error) {
	return r.db.Exec(ctx,
		`UPDATE jobs
		 SET status = 'EXPIRED', updated_at = $1
		 WHERE status = 'PUBLISHED' AND expires_at IS NOT NULL AND expires_at <= $1`,
		now,
	)
}
