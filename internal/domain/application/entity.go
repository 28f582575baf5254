package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending     Status = "PENDING"
	StatusReviewed    Status = "REVIEWED"
	StatusShortlisted Status = "SHORTLISTED"
	StatusAccepted    Status = "ACCEPTED"
	StatusRejected    Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Status      Status
	CoverLetter string
	ResumeURL   string
	AppliedAt   time.Time
	UpdatedAt   time.Time
}

// Detail is an application row joined with the job and company names
// shown in applicant-facing lists.
type Detail struct {
	Application
	JobTitle    string
	CompanyName string
}

// Received is an application row joined with the applicant's identity,
// shown to the employer reviewing a job's inbox.
type Received struct {
	Application
	ApplicantEmail string
	FirstName      string
	LastName       string
}
