package repository

import (
	"context"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/skill"

	"github.com/google/uuid"
)

type JobSkillRepository interface {
	FindByJobID(ctx context.Context, jobID uuid.UUID) ([]skill.JobSkillDetail, error)
}

type PostgresJobSkillRepository struct {
	db database.DB
}

func NewPostgresJobSkillRepository(db database.DB) *PostgresJobSkillRepository {
	return &PostgresJobSkillRepository{db: db}
}

func (r *PostgresJobSkillRepository) FindByJobID(ctx context.Context, jobID uuid.UUID) ([]skill.JobSkillDetail, error) {
	rows, err := r.db.Query(ctx,
		`SELECT js.id, js.job_id, js.skill_id, js.is_required, js.created_at, s.name
		 FROM job_skills js
		 JOIN skills s ON s.id = js.skill_id
		 WHERE js.job_id = $1
		 ORDER BY s.name ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.JobSkillDetail, 0)
	for rows.Next() {
		var it skill.JobSkillDetail
		if err := rows.Scan(&it.ID, &it.JobID, &it.SkillID, &it.IsRequired, &it.CreatedAt, &it.Name); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
