// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/stridelog/internal/analytics"
	"github.com/tomtom215/stridelog/internal/config"
)

// trendsRequest validates the trends endpoint parameters.
type trendsRequest struct {
	Granularity string `validate:"oneof=month quarter year alltime"`
	Window      int    `validate:"min=1"`
}

// AnalyticsTrends returns the calendar rollup at the requested granularity
// with cumulative distance and a trailing moving average. Monthly rollups
// use a wider default window than the coarser granularities. Pass fill=true
// to densify calendar gaps with zero buckets.
func (h *Handler) AnalyticsTrends(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}

	granularity := r.URL.Query().Get("granularity")
	if granularity == "" {
		granularity = string(analytics.GranularityMonth)
	}

	defaultWindow := h.cfg.Analytics.RollingWindow
	if granularity == string(analytics.GranularityMonth) {
		defaultWindow = h.cfg.Analytics.RollingWindowMonthly
	}

	req := trendsRequest{
		Granularity: granularity,
		Window:      getIntParam(r, "window", defaultWindow),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	g, err := analytics.ParseGranularity(req.Granularity)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	buckets := analytics.Rollup(table, g)
	if r.URL.Query().Get("fill") == "true" {
		buckets = analytics.FillMissingBuckets(buckets, g)
	}

	respondSuccess(w, analytics.RollingAverage(buckets, req.Window), start, stats.FromCache)
}

// AnalyticsComposition returns the per-bucket activity-group breakdown
// behind stacked-series charts.
func (h *Handler) AnalyticsComposition(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}

	granularity := r.URL.Query().Get("granularity")
	if granularity == "" {
		granularity = string(analytics.GranularityMonth)
	}
	g, err := analytics.ParseGranularity(granularity)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	rows := analytics.Composition(table, g, config.ActivityGroups())
	respondSuccess(w, rows, start, stats.FromCache)
}

// AnalyticsYearOverYear returns one monthly distance series per year for
// overlay comparison.
func (h *Handler) AnalyticsYearOverYear(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}
	respondSuccess(w, analytics.YearOverYear(table), start, stats.FromCache)
}

// AnalyticsDayOfWeek returns the zero-filled weekday histogram.
func (h *Handler) AnalyticsDayOfWeek(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}
	respondSuccess(w, analytics.DayOfWeek(table), start, stats.FromCache)
}

// AnalyticsHourOfDay returns the zero-filled 24-hour histogram.
func (h *Handler) AnalyticsHourOfDay(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}
	respondSuccess(w, analytics.HourOfDay(table), start, stats.FromCache)
}

// AnalyticsTimeOfDay returns activity counts per named day segment.
func (h *Handler) AnalyticsTimeOfDay(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}
	respondSuccess(w, analytics.TimeOfDay(table), start, stats.FromCache)
}

// AnalyticsCalendar returns the (ISO week, weekday) density cells for one
// year, defaulting to the current year.
func (h *Handler) AnalyticsCalendar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}

	year := getIntParam(r, "year", time.Now().UTC().Year())
	respondSuccess(w, analytics.CalendarDensity(table, year), start, stats.FromCache)
}

// Races returns the race-flagged activities, most recent first.
func (h *Handler) Races(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}
	respondSuccess(w, analytics.Races(table), start, stats.FromCache)
}

// RacesBest returns the fastest running time within each standard race
// distance band.
func (h *Handler) RacesBest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table, stats, ok := h.filteredTable(w, r)
	if !ok {
		return
	}
	respondSuccess(w, analytics.BestRaceTimes(table), start, stats.FromCache)
}
