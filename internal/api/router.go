// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/stridelog/internal/config"
)

// NewRouter wires all routes with the global middleware stack: request
// IDs, real-IP extraction, panic recovery, CORS, per-IP rate limiting,
// and Prometheus instrumentation.
func NewRouter(cfg *config.Config, handler *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Security.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         86400,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(cfg))
		r.Use(prometheusMetrics)

		r.Get("/health", handler.Health)
		r.Get("/activities", handler.Activities)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/summary", handler.StatsSummary)
			r.Get("/records", handler.StatsRecords)
			r.Get("/fun", handler.StatsFun)
			r.Get("/cheeky", handler.StatsCheeky)
			r.Get("/obsession", handler.StatsObsession)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/trends", handler.AnalyticsTrends)
			r.Get("/composition", handler.AnalyticsComposition)
			r.Get("/year-over-year", handler.AnalyticsYearOverYear)
			r.Get("/day-of-week", handler.AnalyticsDayOfWeek)
			r.Get("/hour-of-day", handler.AnalyticsHourOfDay)
			r.Get("/time-of-day", handler.AnalyticsTimeOfDay)
			r.Get("/calendar", handler.AnalyticsCalendar)
		})

		r.Get("/races", handler.Races)
		r.Get("/races/best", handler.RacesBest)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "endpoint not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	})

	return r
}

// rateLimit builds the per-IP limiter, or a no-op when disabled.
func rateLimit(cfg *config.Config) func(http.Handler) http.Handler {
	if cfg.Security.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.Limit(
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	)
}
