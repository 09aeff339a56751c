// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

// Package models defines the domain types shared across the Stridelog
// pipeline: the canonical activity record, the canonical table, and the
// derived statistics structures the API serves.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one normalized record from the export. Records are immutable
// once loaded; every downstream stage works on new tables, never mutating
// records in place.
//
// Invariants established by the loader:
//   - Time is parseable and normalized to UTC
//   - DistanceKm >= 0
//   - DurationS > 0
//   - Group is one of the configured activity groups
type Activity struct {
	// ID is a deterministic UUID derived from the record's identity, so
	// re-loading the same export produces the same IDs.
	ID uuid.UUID `json:"id"`

	// Time is the activity start timestamp in UTC.
	Time time.Time `json:"time"`

	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Type is the free-text activity-type label from the export.
	Type string `json:"type"`

	// Group is the derived coarse category (Running, Cycling, ...).
	Group string `json:"group"`

	DistanceKm float64 `json:"distance_km"`

	// DurationS is the moving time in seconds.
	DurationS float64 `json:"duration_s"`

	ElevationM float64 `json:"elevation_m"`

	// AvgSpeedKmh is the average moving speed; 0 when unknown or when the
	// computed value was implausible.
	AvgSpeedKmh float64 `json:"avg_speed_kmh,omitempty"`

	// IsRace marks activities the race heuristic classified as races.
	IsRace bool `json:"is_race,omitempty"`
}

// DurationHours returns the moving time in hours. Durations are kept in
// source seconds internally and converted at the boundary.
func (a Activity) DurationHours() float64 {
	return a.DurationS / 3600
}

// ActivityTable is the canonical, time-sorted, in-memory table of all valid
// activity records from one export file. It is safe to share read-only
// across recomputations; filters and aggregations return new tables or new
// derived values.
type ActivityTable struct {
	rows []Activity
}

// NewActivityTable builds a canonical table from rows already sorted
// ascending by time. The slice is owned by the table afterwards.
func NewActivityTable(rows []Activity) *ActivityTable {
	return &ActivityTable{rows: rows}
}

// Len returns the number of records.
func (t *ActivityTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Rows returns the records in ascending time order. The returned slice is a
// read-only view; callers must not modify it.
func (t *ActivityTable) Rows() []Activity {
	if t == nil {
		return nil
	}
	return t.rows
}

// First returns the earliest record and true, or a zero record and false
// when the table is empty.
func (t *ActivityTable) First() (Activity, bool) {
	if t.Len() == 0 {
		return Activity{}, false
	}
	return t.rows[0], true
}

// Last returns the latest record and true, or a zero record and false when
// the table is empty.
func (t *ActivityTable) Last() (Activity, bool) {
	if t.Len() == 0 {
		return Activity{}, false
	}
	return t.rows[len(t.rows)-1], true
}

// SpanDays returns the number of days between the first and last record.
// Zero for empty or single-record tables.
func (t *ActivityTable) SpanDays() float64 {
	if t.Len() < 2 {
		return 0
	}
	return t.rows[len(t.rows)-1].Time.Sub(t.rows[0].Time).Hours() / 24
}
