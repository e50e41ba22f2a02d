package app

import (
	"fmt"
	"strings"

	"career-guide/internal/config"
	"career-guide/internal/delivery/http/handler"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/delivery/http/routes"
	v1 "career-guide/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

const maxRequestBodyBytes = 2 * 1024 * 1024

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: maxRequestBodyBytes,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	// access log sits outside the error middleware so it sees final statuses
	app.Use(middleware.NewAccessLogMiddleware(c.Logger, "/health").Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var pinger handler.Pinger
	if c.Cache != nil {
		pinger = c.Cache
	}

	reg := routes.NewRegistry(handler.NewHealthHandler(c.Config.App.AppName, pinger), v1.Handlers{
		Match:    handler.NewMatchHandler(c.Matching),
		Jobs:     handler.NewJobsHandler(c.Jobs),
		Resume:   handler.NewResumeHandler(c.Resume),
		SkillGap: handler.NewSkillGapHandler(c.SkillGap),
	})
	reg.Register(app)
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
