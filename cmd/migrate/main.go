package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Ankit73-bit/job-portal-backend/internal/app"
	"github.com/Ankit73-bit/job-portal-backend/internal/config"
	"github.com/Ankit73-bit/job-portal-backend/internal/database/migration"
	"github.com/Ankit73-bit/job-portal-backend/internal/database/seeder"
)

func main() {
	dir := flag.String("dir", "migrations", "migrations directory")
	seed := flag.Bool("seed", true, "run seeders after migrating")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()

	r := migration.Runner{Dir: *dir}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Printf("migrations applied")

	if !*seed {
		return
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), time.Minute)
	defer seedCancel()

	s := seeder.Runner{Seeders: seeder.Defaults()}
	if err := s.Run(seedCtx, c.DB); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("seeders applied")
}
