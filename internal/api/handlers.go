// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/stridelog/internal/analytics"
	"github.com/tomtom215/stridelog/internal/models"
)

// Health reports server and data-source status. A failed load degrades
// the status rather than erroring, so monitors can still scrape it.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	health := models.HealthStatus{
		Status:        "ok",
		Version:       h.version,
		SourcePath:    h.cfg.Data.Path,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	table, stats, err := h.loader.Load(h.cfg.Data.Path)
	if err != nil {
		health.Status = "degraded"
	} else {
		health.SourceLoaded = true
		health.ActivityCount = table.Len()
		health.DroppedRows = stats.DroppedTotal()
		loadedAt := stats.LoadedAt
		health.LastLoadTime = &loadedAt
	}

	respondSuccess(w, health, start, false)
}

// activitiesRequest bounds the pagination parameters.
type activitiesRequest struct {
	Limit  int `validate:"min=1"`
	Offset int `validate:"min=0"`
}

// Activities returns a paginated slice of the filtered table.
func (h *Handler) Activities(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}

	req := activitiesRequest{
		Limit:  getIntParam(r, "limit", h.cfg.API.DefaultPageSize),
		Offset: getIntParam(r, "offset", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.Limit > h.cfg.API.MaxPageSize {
		req.Limit = h.cfg.API.MaxPageSize
	}

	rows := table.Rows()
	total := len(rows)

	from := req.Offset
	if from > total {
		from = total
	}
	to := from + req.Limit
	if to > total {
		to = total
	}

	page := models.ActivitiesPage{
		Activities: rows[from:to],
		Total:      total,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	respondSuccess(w, page, start, stats.FromCache)
}

// StatsSummary returns the filtered table's totals.
func (h *Handler) StatsSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}
	respondSuccess(w, analytics.Summary(table), start, stats.FromCache)
}

// StatsRecords returns the personal records with their full activity
// context.
func (h *Handler) StatsRecords(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}
	respondSuccess(w, analytics.Records(table), start, stats.FromCache)
}

// StatsFun returns the comparative metrics (Earth circumferences, Everest
// ascents, activity rate).
func (h *Handler) StatsFun(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}
	respondSuccess(w, analytics.Fun(table), start, stats.FromCache)
}

// StatsCheeky returns the everyday-comparison metrics.
func (h *Handler) StatsCheeky(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}
	respondSuccess(w, analytics.Cheeky(table), start, stats.FromCache)
}

// StatsObsession returns the 0-100 exercise-obsession composite.
func (h *Handler) StatsObsession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}
	respondSuccess(w, analytics.Obsession(table), start, stats.FromCache)
}
