package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ankit73-bit/job-portal-backend/internal/config"
	"github.com/Ankit73-bit/job-portal-backend/internal/database"
	dbpostgres "github.com/Ankit73-bit/job-portal-backend/internal/database/postgres"
	"github.com/Ankit73-bit/job-portal-backend/internal/infrastructure/ratelimit"
	"github.com/Ankit73-bit/job-portal-backend/internal/logger"
)

// Container holds the process-wide dependencies. It is built once at
// startup and torn down in reverse order on shutdown.
type Container struct {
	Config  config.Config
	Log     zerolog.Logger
	DB      database.DB
	Limiter *ratelimit.Limiter
}

func NewContainer(cfg config.Config) (*Container, error) {
	log := logger.New(cfg.App.AppName, cfg.App.Environment, cfg.App.IsDevelopment())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	limiter := ratelimit.New(cfg.RateLimit, cfg.Redis, log)

	return &Container{Config: cfg, Log: log, DB: db, Limiter: limiter}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Limiter != nil {
		_ = c.Limiter.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
