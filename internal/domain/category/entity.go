package category

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}

// WithJobCount is a Category joined with how many published jobs
// currently reference it.
type WithJobCount struct {
	Category
	PublishedJobs int
}
