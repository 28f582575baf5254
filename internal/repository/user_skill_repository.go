package repository

import (
	"context"
	"errors"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrUserSkillNotFound  = errors.New("user skill not found")
	ErrDuplicateUserSkill = errors.New("user already has this skill")
)

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.UserSkillDetail, error)
	Add(ctx context.Context, us skill.UserSkill) error
	Remove(ctx context.Context, userID, skillID uuid.UUID) error
	Replace(ctx context.Context, userID uuid.UUID, skills []skill.UserSkill) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.UserSkillDetail, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.id, us.user_id, us.skill_id, us.proficiency_level, us.years_experience, us.created_at, s.name
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.UserSkillDetail, 0)
	for rows.Next() {
		var it skill.UserSkillDetail
		if err := rows.Scan(&it.ID, &it.UserID, &it.SkillID, &it.ProficiencyLevel, &it.YearsExperience, &it.CreatedAt, &it.Name); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) Add(ctx context.Context, us skill.UserSkill) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills (id, user_id, skill_id, proficiency_level, years_experience, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		us.ID, us.UserID, us.SkillID, us.ProficiencyLevel, us.YearsExperience, us.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUserSkill
		}
		return err
	}
	return nil
}

func (r *PostgresUserSkillRepository) Remove(ctx context.Context, userID, skillID uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserSkillNotFound
	}
	return nil
}

// Replace swaps the user's full skill set in one transaction.
func (r *PostgresUserSkillRepository) Replace(ctx context.Context, userID uuid.UUID, skills []skill.UserSkill) error {
	return database.WithinTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE user_id = $1`, userID); err != nil {
			return err
		}
		for _, us := range skills {
			_, err := tx.Exec(ctx,
				`INSERT INTO user_skills (id, user_id, skill_id, proficiency_level, years_experience, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				us.ID, us.UserID, us.SkillID, us.ProficiencyLevel, us.YearsExperience, us.CreatedAt,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
