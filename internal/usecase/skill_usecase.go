package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/skill"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/repository"
)

type SkillUsecase interface {
	ListSkills(ctx context.Context, search string) ([]skill.Skill, error)
	CreateSkill(ctx context.Context, actor Actor, name string) (skill.Skill, error)
	DeleteSkill(ctx context.Context, actor Actor, id uuid.UUID) error
}

type Skill struct {
	skills repository.SkillRepository
	now    func() time.Time
}

func NewSkillUsecase(skills repository.SkillRepository) *Skill {
	return &Skill{skills: skills, now: time.Now}
}

func (u *Skill) ListSkills(ctx context.Context, search string) ([]skill.Skill, error) {
	items, err := u.skills.GetAll(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (u *Skill) CreateSkill(ctx context.Context, actor Actor, name string) (skill.Skill, error) {
	if actor.Role != user.RoleAdmin {
		return skill.Skill{}, apperr.Forbidden("admin access required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return skill.Skill{}, apperr.InvalidInput("skill name is required")
	}

	s := skill.Skill{ID: uuid.New(), Name: name, CreatedAt: u.now()}
	if err := u.skills.Create(ctx, s); err != nil {
		if errors.Is(err, repository.ErrSkillNameTaken) {
			return skill.Skill{}, apperr.Conflict("skill name already exists")
		}
		return skill.Skill{}, apperr.Internal(err)
	}
	return s, nil
}

func (u *Skill) DeleteSkill(ctx context.Context, actor Actor, id uuid.UUID) error {
	if actor.Role != user.RoleAdmin {
		return apperr.Forbidden("admin access required")
	}

	n, err := u.skills.CountRefs(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if n > 0 {
		return apperr.InvalidInput("skill is still referenced by jobs or profiles")
	}

	if err := u.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return apperr.NotFound("skill not found")
		}
		return apperr.Internal(err)
	}
	return nil
}
