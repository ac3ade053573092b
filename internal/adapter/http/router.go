package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/pocketledger/internal/adapter/http/handler"
	"github.com/iho/pocketledger/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	PageHandler   *handler.PageHandler
	APIHandler    *handler.APIHandler
	HealthHandler *handler.HealthHandler
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Metrics)

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	// Page
	r.Get("/", cfg.PageHandler.Show)
	r.Post("/transactions", cfg.PageHandler.AddTransaction)
	r.Post("/cards", cfg.PageHandler.AddCard)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/summary", cfg.APIHandler.Summary)
		r.Get("/reconciliation", cfg.APIHandler.Reconciliation)

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", cfg.APIHandler.ListTransactions)
			r.Post("/", cfg.APIHandler.CreateTransaction)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", cfg.APIHandler.ListCards)
			r.Post("/", cfg.APIHandler.CreateCard)
		})
	})

	return r
}
