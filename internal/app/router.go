package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/handler"
	"github.com/nstepanov-dev/shortener/internal/middleware"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.GzipMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Routes
	r.Get("/", h.Home)
	r.Get("/ping", h.Ping)
	r.Post("/shorten", h.CreateURLJSON)
	r.Post("/api/shorten/batch", h.CreateURLBatch)
	r.Get("/api/{code}/stats", h.GetURLStats)
	r.Get("/{code}", h.GetURL)

	return r
}
