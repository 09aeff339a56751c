// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

// Package metrics provides Prometheus instrumentation for Stridelog:
// loader throughput and drop counts, loader cache efficiency, and API
// endpoint latency.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Loader metrics
	LoadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loader_loads_total",
			Help: "Total number of activity export loads",
		},
	)

	LoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loader_load_errors_total",
			Help: "Total number of failed activity export loads",
		},
	)

	LoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "loader_load_duration_seconds",
			Help:    "Duration of activity export loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RowsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "loader_rows_loaded",
			Help: "Number of activity records in the canonical table",
		},
	)

	RowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loader_rows_dropped_total",
			Help: "Total number of export rows dropped during normalization",
		},
		[]string{"reason"},
	)

	// Loader cache metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loader_cache_hits_total",
			Help: "Total number of loader cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loader_cache_misses_total",
			Help: "Total number of loader cache misses",
		},
	)

	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
