// Package dto defines the request and response shapes exchanged at the
// HTTP boundary. Request structs carry validator tags; enum and
// business-rule checks beyond field shape live in the usecases.
package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,oneof=JOB_SEEKER EMPLOYER"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateAccountRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl" validate:"omitempty,url"`
	ResumeURL string `json:"resumeUrl" validate:"omitempty,url"`
}

type UserSkillRequest struct {
	SkillID          uuid.UUID `json:"skillId" validate:"required"`
	ProficiencyLevel int       `json:"proficiencyLevel" validate:"required,min=1,max=5"`
	YearsExperience  int       `json:"yearsExperience" validate:"min=0"`
}

type ReplaceUserSkillsRequest struct {
	Skills []UserSkillRequest `json:"skills" validate:"dive"`
}

type CompanyRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Website     string     `json:"website" validate:"omitempty,url"`
	Industry    string     `json:"industry"`
	Size        string     `json:"size"`
	Location    string     `json:"location"`
	LogoURL     string     `json:"logoUrl" validate:"omitempty,url"`
	FoundedAt   *time.Time `json:"foundedAt"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type CreateSkillRequest struct {
	Name string `json:"name" validate:"required"`
}

type JobSkillRequest struct {
	SkillID    uuid.UUID `json:"skillId" validate:"required"`
	IsRequired bool      `json:"isRequired"`
}

type JobRequest struct {
	Title            string            `json:"title" validate:"required"`
	Description      string            `json:"description" validate:"required"`
	Requirements     string            `json:"requirements"`
	Responsibilities string            `json:"responsibilities"`
	Type             string            `json:"type" validate:"required"`
	ExperienceLevel  string            `json:"experienceLevel" validate:"required"`
	SalaryMin        *float64          `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax        *float64          `json:"salaryMax" validate:"omitempty,gte=0"`
	Currency         string            `json:"currency"`
	Location         string            `json:"location"`
	IsRemote         bool              `json:"isRemote"`
	ApplicationEmail string            `json:"applicationEmail" validate:"omitempty,email"`
	ApplicationURL   string            `json:"applicationUrl" validate:"omitempty,url"`
	CategoryID       *uuid.UUID        `json:"categoryId"`
	ExpiresAt        *time.Time        `json:"expiresAt"`
	Skills           []JobSkillRequest `json:"skills" validate:"omitempty,dive"`
}

type ApplyRequest struct {
	CoverLetter string `json:"coverLetter"`
	ResumeURL   string `json:"resumeUrl" validate:"omitempty,url"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
