package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/application"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/category"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/company"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/job"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/skill"
	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

type ProfileResponse struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatarUrl"`
	ResumeURL string    `json:"resumeUrl"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	return ProfileResponse{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		ResumeURL: p.ResumeURL,
		UpdatedAt: p.UpdatedAt,
	}
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type CompanyResponse struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	Industry    string     `json:"industry"`
	Size        string     `json:"size"`
	Location    string     `json:"location"`
	LogoURL     string     `json:"logoUrl"`
	FoundedAt   *time.Time `json:"foundedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func NewCompanyResponse(c company.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Industry:    c.Industry,
		Size:        string(c.Size),
		Location:    c.Location,
		LogoURL:     c.LogoURL,
		FoundedAt:   c.FoundedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewCategoryResponse(c category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

type CategoryWithJobsResponse struct {
	CategoryResponse
	PublishedJobs int `json:"publishedJobs"`
}

func NewCategoryWithJobsResponse(c category.WithJobCount) CategoryWithJobsResponse {
	return CategoryWithJobsResponse{
		CategoryResponse: NewCategoryResponse(c.Category),
		PublishedJobs:    c.PublishedJobs,
	}
}

type SkillResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt}
}

type UserSkillResponse struct {
	ID               uuid.UUID `json:"id"`
	SkillID          uuid.UUID `json:"skillId"`
	SkillName        string    `json:"skillName"`
	ProficiencyLevel int       `json:"proficiencyLevel"`
	YearsExperience  int       `json:"yearsExperience"`
}

func NewUserSkillResponse(us skill.UserSkillDetail) UserSkillResponse {
	return UserSkillResponse{
		ID:               us.ID,
		SkillID:          us.SkillID,
		SkillName:        us.Name,
		ProficiencyLevel: int(us.ProficiencyLevel),
		YearsExperience:  int(us.YearsExperience),
	}
}

type JobResponse struct {
	ID               uuid.UUID  `json:"id"`
	CompanyID        uuid.UUID  `json:"companyId"`
	CompanyName      string     `json:"companyName"`
	CategoryID       *uuid.UUID `json:"categoryId"`
	CategoryName     string     `json:"categoryName,omitempty"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Requirements     string     `json:"requirements"`
	Responsibilities string     `json:"responsibilities"`
	Type             string     `json:"type"`
	ExperienceLevel  string     `json:"experienceLevel"`
	SalaryMin        *float64   `json:"salaryMin"`
	SalaryMax        *float64   `json:"salaryMax"`
	Currency         string     `json:"currency"`
	Location         string     `json:"location"`
	IsRemote         bool       `json:"isRemote"`
	ApplicationEmail string     `json:"applicationEmail"`
	ApplicationURL   string     `json:"applicationUrl"`
	Status           string     `json:"status"`
	ExpiresAt        *time.Time `json:"expiresAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func NewJobResponse(l job.Listing) JobResponse {
	return JobResponse{
		ID:               l.ID,
		CompanyID:        l.CompanyID,
		CompanyName:      l.CompanyName,
		CategoryID:       l.CategoryID,
		CategoryName:     l.CategoryName,
		Title:            l.Title,
		Description:      l.Description,
		Requirements:     l.Requirements,
		Responsibilities: l.Responsibilities,
		Type:             string(l.Type),
		ExperienceLevel:  string(l.ExperienceLevel),
		SalaryMin:        l.SalaryMin,
		SalaryMax:        l.SalaryMax,
		Currency:         l.Currency,
		Location:         l.Location,
		IsRemote:         l.IsRemote,
		ApplicationEmail: l.ApplicationEmail,
		ApplicationURL:   l.ApplicationURL,
		Status:           string(l.Status),
		ExpiresAt:        l.ExpiresAt,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func NewJobResponses(listings []job.Listing) []JobResponse {
	out := make([]JobResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, NewJobResponse(l))
	}
	return out
}

type JobSkillResponse struct {
	SkillID    uuid.UUID `json:"skillId"`
	SkillName  string    `json:"skillName"`
	IsRequired bool      `json:"isRequired"`
}

type JobDetailResponse struct {
	JobResponse
	Skills []JobSkillResponse `json:"skills"`
}

func NewJobDetailResponse(l job.Listing, skills []skill.JobSkillDetail) JobDetailResponse {
	res := JobDetailResponse{
		JobResponse: NewJobResponse(l),
		Skills:      make([]JobSkillResponse, 0, len(skills)),
	}
	for _, s := range skills {
		res.Skills = append(res.Skills, JobSkillResponse{
			SkillID:    s.SkillID,
			SkillName:  s.Name,
			IsRequired: s.IsRequired,
		})
	}
	return res
}

type JobStatsResponse struct {
	TotalJobs         int `json:"totalJobs"`
	PublishedJobs     int `json:"publishedJobs"`
	DraftJobs         int `json:"draftJobs"`
	ClosedJobs        int `json:"closedJobs"`
	ExpiredJobs       int `json:"expiredJobs"`
	TotalApplications int `json:"totalApplications"`
}

func NewJobStatsResponse(s job.Stats) JobStatsResponse {
	return JobStatsResponse{
		TotalJobs:         s.TotalJobs,
		PublishedJobs:     s.PublishedJobs,
		DraftJobs:         s.DraftJobs,
		ClosedJobs:        s.ClosedJobs,
		ExpiredJobs:       s.ExpiredJobs,
		TotalApplications: s.TotalApplications,
	}
}

type ExpireSweepResponse struct {
	Expired int64 `json:"expired"`
}

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"jobId"`
	ApplicantID uuid.UUID `json:"applicantId"`
	Status      string    `json:"status"`
	CoverLetter string    `json:"coverLetter"`
	ResumeURL   string    `json:"resumeUrl"`
	AppliedAt   time.Time `json:"appliedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		Status:      string(a.Status),
		CoverLetter: a.CoverLetter,
		ResumeURL:   a.ResumeURL,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type MyApplicationResponse struct {
	ApplicationResponse
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
}

func NewMyApplicationResponse(d application.Detail) MyApplicationResponse {
	return MyApplicationResponse{
		ApplicationResponse: NewApplicationResponse(d.Application),
		JobTitle:            d.JobTitle,
		CompanyName:         d.CompanyName,
	}
}

type ReceivedApplicationResponse struct {
	ApplicationResponse
	ApplicantEmail string `json:"applicantEmail"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
}

func NewReceivedApplicationResponse(r application.Received) ReceivedApplicationResponse {
	return ReceivedApplicationResponse{
		ApplicationResponse: NewApplicationResponse(r.Application),
		ApplicantEmail:      r.ApplicantEmail,
		FirstName:           r.FirstName,
		LastName:            r.LastName,
	}
}
