// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

// Package main is the entry point for the Stridelog server.
//
// Stridelog is a self-hosted analytics service over a Strava bulk-export
// activities CSV. It loads the export into an immutable in-memory table
// and serves summary statistics, personal records, calendar rollups,
// temporal histograms, race history, and novelty metrics over a JSON API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered sources (env > config.yaml > defaults)
//  2. Logging: zerolog structured logging (json or console)
//  3. Loader: memoizing CSV loader, warmed once at startup
//  4. HTTP Server: Chi router with CORS, rate limiting, and Prometheus metrics
//
// # Configuration
//
// Key environment variables:
//   - ACTIVITIES_CSV: path to the Strava activities export (default data/activities.csv)
//   - HTTP_PORT: listen port (default 8572)
//   - LOG_LEVEL: trace|debug|info|warn|error (default info)
//   - DEFAULT_DAYS_BACK: recent-activity window default (default 30)
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM, waiting up to
// 10 seconds for in-flight requests.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/stridelog/internal/api"
	"github.com/tomtom215/stridelog/internal/config"
	stravaimport "github.com/tomtom215/stridelog/internal/import"
	"github.com/tomtom215/stridelog/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("data_path", cfg.Data.Path).
		Msg("Starting Stridelog")

	loader := stravaimport.NewCachedLoader()

	// Warm the table once so the first request doesn't pay the parse cost.
	// A missing or broken export is not fatal; the health endpoint reports
	// it and requests return DATA_SOURCE_ERROR until the file appears.
	if table, stats, err := loader.Load(cfg.Data.Path); err != nil {
		logging.Warn().Err(err).Msg("Initial data load failed, serving degraded until the export is available")
	} else {
		logging.Info().
			Int("activities", table.Len()).
			Int("dropped", stats.DroppedTotal()).
			Msg("Initial data load complete")
	}

	handler := api.NewHandler(cfg, loader, version)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(cfg, handler),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("HTTP server error")
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}
	logging.Info().Msg("Server stopped")
}
