package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/config"
	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/middleware"
	"github.com/Ankit73-bit/job-portal-backend/internal/delivery/http/routes"
)

type App struct {
	Fiber *fiber.App
}

// New assembles the fiber app. Middleware order matters: the error
// middleware is outermost so it sees every failure, the access log runs
// next so denied requests are still recorded, then the rate limiter.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

// Bootstrap builds the container and the app. The returned cleanup
// closes everything the container opened.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	f.Use(middleware.NewErrorMiddleware(c.Log, c.Config.App.IsDevelopment()).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Log).Middleware())
	f.Use(middleware.NewRateLimitMiddleware(c.Limiter).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	if f == nil {
		return
	}

	routes.NewRegistry(c.Config, c.DB).Register(f)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
