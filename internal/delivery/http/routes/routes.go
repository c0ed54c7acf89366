package routes

import (
	"job-scout/internal/delivery/http/handler"
	"job-scout/internal/delivery/http/middleware"
	"job-scout/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health          *handler.HealthHandler
	Chat            *handler.ChatHandler
	Jobs            *handler.JobsHandler
	Recommendations *handler.JobRecommendationHandler
	Stats           *handler.StatsHandler
	Scrape          *handler.ScrapeHandler
	Auth            *handler.AuthHandler
	WS              *ws.Handler

	AuthMW *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		app.Get("/health", r.Health.HandleHealth)
	}
	if r.WS != nil {
		app.Get("/ws/events", r.WS.HandleEventsWS)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	if r.Auth != nil {
		auth := v1.Group("/auth")
		auth.Post("/token", r.Auth.HandleToken)
		auth.Post("/refresh", r.Auth.HandleRefresh)
	}

	if r.Chat != nil {
		v1.Post("/chat", r.Chat.HandleMessage)
		v1.Get("/chat/:sessionID/history", r.Chat.HandleHistory)
		v1.Post("/chat/:sessionID/reset", r.Chat.HandleReset)
	}

	jobs := v1.Group("/jobs")
	if r.Jobs != nil {
		jobs.Get("/search", r.Jobs.HandleSearch)
	}
	if r.Recommendations != nil {
		jobs.Get("/recommendations", r.Recommendations.HandleRecommendations)
	}
	if r.Stats != nil {
		jobs.Get("/statistics", r.Stats.HandleStatistics)
	}

	if r.Scrape != nil && r.AuthMW != nil {
		v1.Post("/scrape", r.Scrape.HandleScrape, r.AuthMW.Middleware())
	}
}
