// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

// Package stravaimport loads a Strava activity export (CSV) into the
// canonical in-memory activity table.
//
// The load pipeline parses rows with declared column types, drops rows that
// violate the canonical-table invariants (counting each drop by reason),
// derives the computed columns (activity group, average speed, race flag),
// and returns a time-sorted table. Fatal conditions (unreadable file,
// missing required columns) surface as *DataSourceError; row-level problems
// never abort a load.
package stravaimport

import (
	"fmt"
	"time"
)

// DataSourceError is a fatal load error: the export cannot produce a
// canonical table at all. Row-level problems are not DataSourceErrors; they
// are dropped and counted in LoadStats.
type DataSourceError struct {
	// Path is the export file the load was attempted from.
	Path string

	// Reason is a short machine-friendly cause: "unreadable",
	// "malformed_csv", "missing_columns".
	Reason string

	// Missing lists the absent required columns for "missing_columns".
	Missing []string

	// Err is the underlying error, if any.
	Err error
}

func (e *DataSourceError) Error() string {
	switch {
	case len(e.Missing) > 0:
		return fmt.Sprintf("data source %s: missing required columns %v", e.Path, e.Missing)
	case e.Err != nil:
		return fmt.Sprintf("data source %s: %s: %v", e.Path, e.Reason, e.Err)
	default:
		return fmt.Sprintf("data source %s: %s", e.Path, e.Reason)
	}
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// DropReason identifies why a row was excluded during normalization.
type DropReason string

// Row drop reasons. Dropped rows are excluded, not coerced: a zero-duration
// "activity" would corrupt pace and rolling-average calculations downstream.
const (
	DropShortRow     DropReason = "short_row"
	DropBadTimestamp DropReason = "bad_timestamp"
	DropNegativeDist DropReason = "negative_distance"
	DropBadDuration  DropReason = "bad_duration"
)

// LoadStats reports the outcome of one load: how many rows the export
// contained, how many survived normalization, and per-reason drop counts.
type LoadStats struct {
	Path      string             `json:"path"`
	TotalRows int                `json:"total_rows"`
	Loaded    int                `json:"loaded"`
	Dropped   map[DropReason]int `json:"dropped,omitempty"`
	LoadedAt  time.Time          `json:"loaded_at"`

	// FromCache is true when the canonical table was served from the
	// loader cache rather than re-parsed.
	FromCache bool `json:"from_cache,omitempty"`
}

func newLoadStats(path string) *LoadStats {
	return &LoadStats{
		Path:    path,
		Dropped: make(map[DropReason]int),
	}
}

func (s *LoadStats) drop(reason DropReason) {
	s.Dropped[reason]++
}

// DroppedTotal returns the total number of dropped rows across all reasons.
func (s *LoadStats) DroppedTotal() int {
	total := 0
	for _, n := range s.Dropped {
		total += n
	}
	return total
}

// Clone returns a copy of the stats safe for the caller to hold.
func (s *LoadStats) Clone() *LoadStats {
	if s == nil {
		return nil
	}
	out := *s
	out.Dropped = make(map[DropReason]int, len(s.Dropped))
	for k, v := range s.Dropped {
		out.Dropped[k] = v
	}
	return &out
}
