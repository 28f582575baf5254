package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/skill"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/repository"
)

type UserSkillInput struct {
	SkillID          uuid.UUID
	ProficiencyLevel int
	YearsExperience  int
}

type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]skill.UserSkillDetail, error)
	AddUserSkill(ctx context.Context, userID uuid.UUID, in UserSkillInput) ([]skill.UserSkillDetail, error)
	RemoveUserSkill(ctx context.Context, userID, skillID uuid.UUID) error
	ReplaceUserSkills(ctx context.Context, userID uuid.UUID, in []UserSkillInput) ([]skill.UserSkillDetail, error)
}

type UserSkill struct {
	userSkills repository.UserSkillRepository
	skills     repository.SkillRepository
	now        func() time.Time
}

func NewUserSkillUsecase(userSkills repository.UserSkillRepository, skills repository.SkillRepository) *UserSkill {
	return &UserSkill{userSkills: userSkills, skills: skills, now: time.Now}
}

func (u *UserSkill) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]skill.UserSkillDetail, error) {
	items, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (u *UserSkill) AddUserSkill(ctx context.Context, userID uuid.UUID, in UserSkillInput) ([]skill.UserSkillDetail, error) {
	if err := validateUserSkill(in); err != nil {
		return nil, err
	}

	if _, err := u.skills.GetByID(ctx, in.SkillID); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return nil, apperr.NotFound("skill not found")
		}
		return nil, apperr.Internal(err)
	}

	us := skill.UserSkill{
		ID:               uuid.New(),
		UserID:           userID,
		SkillID:          in.SkillID,
		ProficiencyLevel: int16(in.ProficiencyLevel),
		YearsExperience:  int16(in.YearsExperience),
		CreatedAt:        u.now(),
	}
	if err := u.userSkills.Add(ctx, us); err != nil {
		if errors.Is(err, repository.ErrDuplicateUserSkill) {
			return nil, apperr.Conflict("skill already added to your profile")
		}
		return nil, apperr.Internal(err)
	}

	return u.ListUserSkills(ctx, userID)
}

func (u *UserSkill) RemoveUserSkill(ctx context.Context, userID, skillID uuid.UUID) error {
	if err := u.userSkills.Remove(ctx, userID, skillID); err != nil {
		if errors.Is(err, repository.ErrUserSkillNotFound) {
			return apperr.NotFound("skill is not on your profile")
		}
		return apperr.Internal(err)
	}
	return nil
}

// ReplaceUserSkills swaps the whole set at once, validating every entry
// before anything is written.
func (u *UserSkill) ReplaceUserSkills(ctx context.Context, userID uuid.UUID, in []UserSkillInput) ([]skill.UserSkillDetail, error) {
	ids := make([]uuid.UUID, 0, len(in))
	seen := make(map[uuid.UUID]bool, len(in))
	for _, item := range in {
		if err := validateUserSkill(item); err != nil {
			return nil, err
		}
		if seen[item.SkillID] {
			return nil, apperr.InvalidInput("duplicate skill in request")
		}
		seen[item.SkillID] = true
		ids = append(ids, item.SkillID)
	}

	existing, err := u.skills.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	for _, id := range ids {
		if !existing[id] {
			return nil, apperr.Newf(apperr.KindNotFound, "skill %s not found", id)
		}
	}

	now := u.now()
	rows := make([]skill.UserSkill, 0, len(in))
	for _, item := range in {
		rows = append(rows, skill.UserSkill{
			ID:               uuid.New(),
			UserID:           userID,
			SkillID:          item.SkillID,
			ProficiencyLevel: int16(item.ProficiencyLevel),
			YearsExperience:  int16(item.YearsExperience),
			CreatedAt:        now,
		})
	}
	if err := u.userSkills.Replace(ctx, userID, rows); err != nil {
		return nil, apperr.Internal(err)
	}

	return u.ListUserSkills(ctx, userID)
}

func validateUserSkill(in UserSkillInput) error {
	if in.SkillID == uuid.Nil {
		return apperr.InvalidInput("skillId is required")
	}
	if in.ProficiencyLevel < 1 || in.ProficiencyLevel > 5 {
		return apperr.InvalidInput("proficiencyLevel must be between 1 and 5")
	}
	if in.YearsExperience < 0 {
		return apperr.InvalidInput("yearsExperience cannot be negative")
	}
	return nil
}
