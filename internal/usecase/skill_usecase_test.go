package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/skill"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
	"github.com/Ankit73-bit/job-portal-backend/internal/pkg/apperr"
	"github.com/Ankit73-bit/job-portal-backend/internal/repository"
)

func TestSkillUsecase_ListSkills_TrimsSearch(t *testing.T) {
	skills := &mockSkillRepo{all: []skill.Skill{{ID: uuid.New(), Name: "Go"}}}
	uc := NewSkillUsecase(skills)

	items, err := uc.ListSkills(context.Background(), "  go  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(items))
	}
	if skills.lastSearch != "go" {
		t.Fatalf("expected trimmed search, got %q", skills.lastSearch)
	}
}

func TestSkillUsecase_CreateSkill_RequiresAdmin(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{})

	_, err := uc.CreateSkill(context.Background(), Actor{Role: user.RoleEmployer}, "Go")
	if !apperr.IsKind(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestSkillUsecase_CreateSkill_EmptyName(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{})

	_, err := uc.CreateSkill(context.Background(), Actor{Role: user.RoleAdmin}, "   ")
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSkillUsecase_CreateSkill_NameConflict(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{createErr: repository.ErrSkillNameTaken})

	_, err := uc.CreateSkill(context.Background(), Actor{Role: user.RoleAdmin}, "Go")
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestSkillUsecase_CreateSkill_Success(t *testing.T) {
	skills := &mockSkillRepo{}
	uc := NewSkillUsecase(skills)

	s, err := uc.CreateSkill(context.Background(), Actor{Role: user.RoleAdmin}, "  Kubernetes ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Name != "Kubernetes" {
		t.Fatalf("expected trimmed name, got %q", s.Name)
	}
	if skills.created == nil || skills.created.ID != s.ID {
		t.Fatalf("skill not persisted: %+v", skills.created)
	}
}

func TestSkillUsecase_DeleteSkill_BlockedByReferences(t *testing.T) {
	skills := &mockSkillRepo{refs: 4}
	uc := NewSkillUsecase(skills)

	err := uc.DeleteSkill(context.Background(), Actor{Role: user.RoleAdmin}, uuid.New())
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if skills.deletedID != uuid.Nil {
		t.Fatalf("delete must not reach the store")
	}
}

func TestSkillUsecase_DeleteSkill_Missing(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{deleteErr: repository.ErrSkillNotFound})

	err := uc.DeleteSkill(context.Background(), Actor{Role: user.RoleAdmin}, uuid.New())
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
