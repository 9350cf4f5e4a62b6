package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"betcontrol/internal/adapter/http/handler"
	"betcontrol/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	UsuarioHandler *handler.UsuarioHandler
	ApostaHandler  *handler.ApostaHandler
	LimiteHandler  *handler.LimiteHandler
	HealthHandler  *handler.HealthHandler
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Usuarios
		r.Route("/usuarios", func(r chi.Router) {
			r.Post("/", cfg.UsuarioHandler.Create)
			r.Get("/", cfg.UsuarioHandler.List)
			// Static segment registered alongside {id}; chi matches it first.
			r.Get("/excederam-limite/{mes}", cfg.UsuarioHandler.ExcederamLimite)
			r.Get("/{id}", cfg.UsuarioHandler.Get)
			r.Put("/{id}", cfg.UsuarioHandler.Update)
			r.Delete("/{id}", cfg.UsuarioHandler.Delete)
		})

		// Apostas
		r.Route("/apostas", func(r chi.Router) {
			r.Post("/", cfg.ApostaHandler.Create)
			r.Get("/", cfg.ApostaHandler.List)
			r.Get("/media", cfg.ApostaHandler.Media)
			r.Get("/acima-da-media", cfg.ApostaHandler.AcimaDaMedia)
			r.Get("/{id}", cfg.ApostaHandler.Get)
			r.Put("/{id}", cfg.ApostaHandler.Update)
			r.Delete("/{id}", cfg.ApostaHandler.Delete)
			r.Get("/{id}/valor-usd", cfg.ApostaHandler.ValorUSD)
		})

		// Limites
		r.Route("/limites", func(r chi.Router) {
			r.Post("/", cfg.LimiteHandler.Create)
			r.Get("/", cfg.LimiteHandler.List)
			r.Get("/{id}", cfg.LimiteHandler.Get)
			r.Put("/{id}", cfg.LimiteHandler.Update)
			r.Delete("/{id}", cfg.LimiteHandler.Delete)
		})
	})

	return r
}
