package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"distrep/internal/config"
	"distrep/internal/middleware"
	"distrep/internal/services"
)

// NewRouter assembles the HTTP surface: the upload endpoint, the dashboard
// read endpoints, health, and Prometheus metrics.
func NewRouter(cfg *config.Config, logger *slog.Logger, service *services.ReportService) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(middleware.Recoverer(logger))

	reports := NewReportHandler(service, cfg.Upload, logger)
	health := NewHealthHandler()

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health.Health)

		r.Route("/reports", func(r chi.Router) {
			r.With(middleware.RateLimit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)).
				Post("/process", reports.Process)
			r.Get("/latest", reports.Latest)
			r.Get("/latest/csv", reports.ExportCSV)
			r.Get("/summary", reports.Summary)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
