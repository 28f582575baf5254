package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleJobSeeker Role = "JOB_SEEKER"
	RoleEmployer  Role = "EMPLOYER"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Profile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Phone     string
	Bio       string
	AvatarURL string
	ResumeURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
