package app

import (
	"fmt"
	"strings"

	"job-scout/internal/delivery/http/handler"
	"job-scout/internal/delivery/http/middleware"
	"job-scout/internal/delivery/http/routes"
	"job-scout/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	go c.Hub.Run()

	return &App{Fiber: f, Container: c}
}

func Bootstrap(c *Container) (*App, func() error, error) {
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	app.Use(accessMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	registry := &routes.Registry{
		Health:          handler.NewHealthHandler(c.DB, c.Corpus),
		Chat:            handler.NewChatHandler(c.ChatUC),
		Jobs:            handler.NewJobsHandler(c.SearchUC),
		Recommendations: handler.NewJobRecommendationHandler(c.RecommendationUC),
		Stats:           handler.NewStatsHandler(c.StatsUC),
		Scrape:          handler.NewScrapeHandler(c.ScrapeUC),
		Auth:            handler.NewAuthHandler(c.AuthUC),
		WS:              ws.NewHandler(c.Hub, c.Logger),
		AuthMW:          middleware.NewAuthMiddleware(c.JWT),
	}
	registry.Register(app)
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
