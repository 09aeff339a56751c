// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package stravaimport

import (
	"sort"
	"time"

	"github.com/tomtom215/stridelog/internal/logging"
	"github.com/tomtom215/stridelog/internal/metrics"
	"github.com/tomtom215/stridelog/internal/models"
)

// Loader parses a Strava activity export into the canonical table.
type Loader struct {
	mapper *Mapper
}

// NewLoader creates a new export loader.
func NewLoader() *Loader {
	return &Loader{mapper: NewMapper()}
}

// Load reads, normalizes, and sorts the export at path.
//
// Post-conditions on success: the table is sorted ascending by timestamp,
// every record has a parseable UTC timestamp, non-negative distance, and
// positive duration. Rows violating those invariants are dropped and
// counted in the returned LoadStats; a fatal problem (unreadable file,
// missing required columns) returns a *DataSourceError and no table.
func (l *Loader) Load(path string) (*models.ActivityTable, *LoadStats, error) {
	start := time.Now()
	stats := newLoadStats(path)

	header, rows, err := readExport(path)
	if err != nil {
		metrics.LoadErrors.Inc()
		return nil, nil, err
	}

	idx, missing := resolveColumns(header)
	if len(missing) > 0 {
		metrics.LoadErrors.Inc()
		return nil, nil, &DataSourceError{Path: path, Reason: "missing_columns", Missing: missing}
	}

	stats.TotalRows = len(rows)
	activities := make([]models.Activity, 0, len(rows))

	for i, row := range rows {
		if len(row) == 0 {
			stats.drop(DropShortRow)
			continue
		}
		act, reason, ok := l.mapper.ToActivity(row, idx)
		if !ok {
			stats.drop(reason)
			logging.Debug().
				Int("row", i+1).
				Str("reason", string(reason)).
				Msg("Dropped export row")
			continue
		}
		activities = append(activities, act)
	}

	// Downstream time-series logic assumes ascending order.
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Time.Before(activities[j].Time)
	})

	stats.Loaded = len(activities)
	stats.LoadedAt = time.Now()

	metrics.LoadsTotal.Inc()
	metrics.LoadDuration.Observe(time.Since(start).Seconds())
	metrics.RowsLoaded.Set(float64(stats.Loaded))
	for reason, n := range stats.Dropped {
		metrics.RowsDropped.WithLabelValues(string(reason)).Add(float64(n))
	}

	logging.Info().
		Str("path", path).
		Int("total_rows", stats.TotalRows).
		Int("loaded", stats.Loaded).
		Int("dropped", stats.DroppedTotal()).
		Dur("duration", time.Since(start)).
		Msg("Activity export loaded")

	return models.NewActivityTable(activities), stats, nil
}
