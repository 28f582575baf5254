package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/application"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/pagination"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("already applied to this job")
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID, p pagination.Params) ([]application.Detail, int, error)
	ListByJob(ctx context.Context, jobID uuid.UUID, status application.Status, p pagination.Params) ([]application.Received, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status, now time.Time) error
	CountByJob(ctx context.Context, jobID uuid.UUID) (int, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// Create relies on the (job_id, applicant_id) unique constraint as the
// authoritative duplicate guard; callers may pre-check for a friendlier
// message but the constraint decides.
func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, applicant_id, status, cover_letter, resume_url,
		                           applied_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.JobID, a.ApplicantID, a.Status, a.CoverLetter, a.ResumeURL,
		a.AppliedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_id, applicant_id, status, cover_letter, resume_url, applied_at, updated_at
		 FROM applications
		 WHERE id = $1`,
		id,
	)

	var a application.Application
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CoverLetter, &a.ResumeURL,
		&a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, applicantID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID, p pagination.Params) ([]application.Detail, int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.applicant_id, a.status, a.cover_letter, a.resume_url,
		        a.applied_at, a.updated_at, j.title, c.name
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN companies c ON c.id = j.company_id
		 WHERE a.applicant_id = $1
		 ORDER BY a.applied_at DESC, a.id DESC
		 LIMIT $2 OFFSET $3`,
		applicantID, p.Limit, p.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]application.Detail, 0)
	for rows.Next() {
		var d application.Detail
		err := rows.Scan(&d.ID, &d.JobID, &d.ApplicantID, &d.Status, &d.CoverLetter, &d.ResumeURL,
			&d.AppliedAt, &d.UpdatedAt, &d.JobTitle, &d.CompanyName)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM applications WHERE applicant_id = $1`, applicantID)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListByJob returns the job's inbox for the reviewing employer. A
// non-empty status narrows the result.
func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID, status application.Status, p pagination.Params) ([]application.Received, int, error) {
	where := ` WHERE a.job_id = $1`
	args := []any{jobID}
	if status != "" {
		args = append(args, status)
		where += ` AND a.status = $2`
	}

	countArgs := make([]any, len(args))
	copy(countArgs, args)

	args = append(args, p.Limit)
	limitPh := `$` + strconv.Itoa(len(args))
	args = append(args, p.Offset())
	offsetPh := `$` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.applicant_id, a.status, a.cover_letter, a.resume_url,
		        a.applied_at, a.updated_at, u.email, pr.first_name, pr.last_name
		 FROM applications a
		 JOIN users u ON u.id = a.applicant_id
		 LEFT JOIN profiles pr ON pr.user_id = u.id`+where+`
		 ORDER BY a.applied_at DESC, a.id DESC
		 LIMIT `+limitPh+` OFFSET `+offsetPh,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]application.Received, 0)
	for rows.Next() {
		var (
			rec       application.Received
			firstName sql.NullString
			lastName  sql.NullString
		)
		err := rows.Scan(&rec.ID, &rec.JobID, &rec.ApplicantID, &rec.Status, &rec.CoverLetter, &rec.ResumeURL,
			&rec.AppliedAt, &rec.UpdatedAt, &rec.ApplicantEmail, &firstName, &lastName)
		if err != nil {
			return nil, 0, err
		}
		rec.FirstName = firstName.String
		rec.LastName = lastName.String
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM applications a`+where, countArgs...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status, now time.Time) error {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`,
		status, now, id,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) CountByJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	var c int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM applications WHERE job_id = $1`, jobID)
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}
