package seeder

import (
	"context"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
