package usecase

import (
	"github.com/google/uuid"

	"github.com/Ankit73-bit/job-portal-backend/internal/domain/user"
)

// Actor is the authenticated identity an operation runs on behalf of,
// extracted upstream from the bearer token.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  user.Role
}
