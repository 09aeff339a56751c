// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

// Package api provides the HTTP surface of Stridelog: a Chi router and
// read-only JSON handlers over the canonical activity table. Handlers
// load the table through the memoizing loader on every request, so the
// server picks up a replaced export file without a restart, and all
// derived statistics are recomputed from the shared filter parameters
// (days_back window, activity-group selection).
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/stridelog/internal/analytics"
	"github.com/tomtom215/stridelog/internal/config"
	stravaimport "github.com/tomtom215/stridelog/internal/import"
	"github.com/tomtom215/stridelog/internal/models"
)

// Handler serves all API endpoints.
type Handler struct {
	cfg       *config.Config
	loader    *stravaimport.CachedLoader
	version   string
	startTime time.Time
}

// NewHandler creates the API handler.
func NewHandler(cfg *config.Config, loader *stravaimport.CachedLoader, version string) *Handler {
	return &Handler{
		cfg:       cfg,
		loader:    loader,
		version:   version,
		startTime: time.Now(),
	}
}

// loadTable fetches the canonical table through the memoizing loader and
// translates load failures into an API error response. Returns false when
// the response has already been written.
func (h *Handler) loadTable(w http.ResponseWriter) (*models.ActivityTable, *stravaimport.LoadStats, bool) {
	table, stats, err := h.loader.Load(h.cfg.Data.Path)
	if err != nil {
		var srcErr *stravaimport.DataSourceError
		if errors.As(err, &srcErr) {
			respondError(w, http.StatusServiceUnavailable, "DATA_SOURCE_ERROR", srcErr.Error(), err)
		} else {
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load activity data", err)
		}
		return nil, nil, false
	}
	return table, stats, true
}

// filterParams are the shared request filters applied before derivation.
type filterParams struct {
	daysBack  int
	hasWindow bool
	groups    []string
	hasGroups bool
}

// parseFilters extracts the shared filter parameters. days_back values
// outside the configured bounds are clamped, never rejected. The groups
// filter distinguishes an absent parameter (no group filtering) from a
// present-but-empty one (empty selection, empty result).
func (h *Handler) parseFilters(r *http.Request) filterParams {
	q := r.URL.Query()

	params := filterParams{
		hasWindow: q.Has("days_back"),
		hasGroups: q.Has("groups"),
	}
	if params.hasWindow {
		daysBack := getIntParam(r, "days_back", h.cfg.Analytics.DefaultDaysBack)
		params.daysBack = clamp(daysBack, h.cfg.Analytics.MinDaysBack, h.cfg.Analytics.MaxDaysBack)
	}
	if params.hasGroups {
		params.groups = parseCommaSeparated(q.Get("groups"))
	}
	return params
}

// applyFilters derives the working table from the canonical one. Filters
// compose by intersection; order does not change the result.
func (h *Handler) applyFilters(t *models.ActivityTable, params filterParams) *models.ActivityTable {
	if params.hasWindow {
		t = analytics.ByWindow(t, time.Now().UTC(), params.daysBack)
	}
	if params.hasGroups {
		t = analytics.ByGroups(t, params.groups)
	}
	return t
}

// filteredTable loads the canonical table and applies the request's
// filters. Returns false when an error response has already been written.
func (h *Handler) filteredTable(w http.ResponseWriter, r *http.Request) (*models.ActivityTable, *stravaimport.LoadStats, bool) {
	table, stats, ok := h.loadTable(w)
	if !ok {
		return nil, nil, false
	}
	return h.applyFilters(table, h.parseFilters(r)), stats, true
}
