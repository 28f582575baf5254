package job

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusClosed    Status = "CLOSED"
	StatusExpired   Status = "EXPIRED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusClosed, StatusExpired:
		return true
	}
	return false
}

type Type string

const (
	TypeFullTime   Type = "FULL_TIME"
	TypePartTime   Type = "PART_TIME"
	TypeContract   Type = "CONTRACT"
	TypeInternship Type = "INTERNSHIP"
	TypeFreelance  Type = "FREELANCE"
	TypeTemporary  Type = "TEMPORARY"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship, TypeFreelance, TypeTemporary:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "ENTRY"
	LevelJunior    ExperienceLevel = "JUNIOR"
	LevelMid       ExperienceLevel = "MID"
	LevelSenior    ExperienceLevel = "SENIOR"
	LevelLead      ExperienceLevel = "LEAD"
	LevelExecutive ExperienceLevel = "EXECUTIVE"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelLead, LevelExecutive:
		return true
	}
	return false
}

type Job struct {
	ID               uuid.UUID
	CompanyID        uuid.UUID
	PostedBy         uuid.UUID
	CategoryID       *uuid.UUID
	Title            string
	Description      string
	Requirements     string
	Responsibilities string
	Type             Type
	ExperienceLevel  ExperienceLevel
	SalaryMin        *float64
	SalaryMax        *float64
	Currency         string
	Location         string
	IsRemote         bool
	ApplicationEmail string
	ApplicationURL   string
	Status           Status
	ExpiresAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Expired reports whether the posting has passed its expiry instant.
// Jobs without an expiry never expire.
func (j Job) Expired(now time.Time) bool {
	return j.ExpiresAt != nil && !j.ExpiresAt.After(now)
}

// Listing is a job row joined with the names a list or search result
// displays alongside it.
type Listing struct {
	Job
	CompanyName  string
	CategoryName string
}

// Stats aggregates an employer's postings for the dashboard endpoint.
type Stats struct {
	TotalJobs         int
	PublishedJobs     int
	DraftJobs         int
	ClosedJobs        int
	ExpiredJobs       int
	TotalApplications int
}
