package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrSkillNotFound  = errors.New("skill not found")
	ErrSkillNameTaken = errors.New("skill name already exists")
)

type SkillRepository interface {
	Create(ctx context.Context, s skill.Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	GetAll(ctx context.Context, search string) ([]skill.Skill, error)
	ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
	CountRefs(ctx context.Context, id uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, name, created_at) VALUES ($1, $2, $3)`,
		s.ID, s.Name, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSkillNameTaken
		}
		return err
	}
	return nil
}

func (r *PostgresSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, created_at FROM skills WHERE id = $1`, id)

	var s skill.Skill
	if err := row.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) GetAll(ctx context.Context, search string) ([]skill.Skill, error) {
	query := `SELECT id, name, created_at FROM skills`
	args := make([]any, 0, 1)
	if search != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ExistingIDs reports which of the given skill ids are present, so job
// creation can reject unknown ids with a precise message.
func (r *PostgresSkillRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ph := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids))
	for i, id := range ids {
		ph = append(ph, "$"+strconv.Itoa(i+1))
		args = append(args, id)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id FROM skills WHERE id IN (`+strings.Join(ph, ", ")+`)`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountRefs counts job and user associations still pointing at the
// skill. Reference data is deletable only when unreferenced.
func (r *PostgresSkillRepository) CountRefs(ctx context.Context, id uuid.UUID) (int, error) {
	row := r.db.QueryRow(ctx,
		`SELECT (SELECT COUNT(1) FROM job_skills WHERE skill_id = $1)
		      + (SELECT COUNT(1) FROM user_skills WHERE skill_id = $1)`,
		id,
	)

	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}
