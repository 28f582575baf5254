package seeder

import (
	"context"
	"fmt"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []string{
		"Go",
		"JavaScript",
		"TypeScript",
		"Python",
		"Java",
		"React",
		"Node.js",
		"PostgreSQL",
		"MySQL",
		"Redis",
		"Docker",
		"Kubernetes",
		"AWS",
		"GCP",
		"Terraform",
		"Git",
		"GraphQL",
		"REST API Design",
		"CI/CD",
		"Figma",
	}

	for _, name := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name) VALUES (gen_random_uuid(), $1)
			 ON CONFLICT (lower(name)) DO NOTHING`,
			name,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
