package seeder

import (
	"context"
	"fmt"

	"github.com/Ankit73-bit/job-portal-backend/internal/database"
)

type CategoriesSeeder struct{}

func (CategoriesSeeder) Name() string { return "categories" }

// Run inserts the reference categories. Reruns are no-ops thanks to the
// conflict target on the case-insensitive slug.
func (CategoriesSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name        string
		Slug        string
		Description string
	}{
		{Name: "Software Engineering", Slug: "software-engineering", Description: "Backend, frontend, mobile and systems development roles."},
		{Name: "Data Science", Slug: "data-science", Description: "Analytics, machine learning and data engineering roles."},
		{Name: "DevOps", Slug: "devops", Description: "Infrastructure, CI/CD and site reliability roles."},
		{Name: "Design", Slug: "design", Description: "Product, UX and visual design roles."},
		{Name: "Product Management", Slug: "product-management", Description: "Product strategy and delivery roles."},
		{Name: "Quality Assurance", Slug: "quality-assurance", Description: "Manual and automated testing roles."},
		{Name: "Marketing", Slug: "marketing", Description: "Growth, content and brand roles."},
		{Name: "Sales", Slug: "sales", Description: "Account management and business development roles."},
		{Name: "Customer Support", Slug: "customer-support", Description: "Support and customer success roles."},
		{Name: "Human Resources", Slug: "human-resources", Description: "Recruiting and people operations roles."},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO categories (id, name, slug, description)
			 VALUES (gen_random_uuid(), $1, $2, $3)
			 ON CONFLICT (lower(slug)) DO NOTHING`,
			it.Name,
			it.Slug,
			it.Description,
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
