// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

// Package analytics derives every served statistic from the canonical
// activity table: window and group filters, calendar rollups, trend
// series, temporal histograms, personal records, race extraction, and
// the novelty metrics. All functions are pure; they read the table and
// return new values, so concurrent requests can share one table safely.
package analytics

import (
	"time"

	"github.com/tomtom215/stridelog/internal/models"
)

// ByWindow returns a new table containing the records from the last
// daysBack days, measured backwards from now. The filter is inclusive at
// the window start. Order is preserved, so the result is still a valid
// canonical table.
func ByWindow(t *models.ActivityTable, now time.Time, daysBack int) *models.ActivityTable {
	cutoff := now.AddDate(0, 0, -daysBack)

	rows := t.Rows()
	// Rows are time-sorted; find the first record inside the window.
	start := len(rows)
	for i, a := range rows {
		if !a.Time.Before(cutoff) {
			start = i
			break
		}
	}

	filtered := make([]models.Activity, len(rows)-start)
	copy(filtered, rows[start:])
	return models.NewActivityTable(filtered)
}

// ByGroups returns a new table containing only records whose group is in
// groups. An empty selection selects nothing: the result is an empty
// table, not the full one. Order is preserved.
func ByGroups(t *models.ActivityTable, groups []string) *models.ActivityTable {
	selected := make(map[string]bool, len(groups))
	for _, g := range groups {
		selected[g] = true
	}

	filtered := make([]models.Activity, 0, t.Len())
	for _, a := range t.Rows() {
		if selected[a.Group] {
			filtered = append(filtered, a)
		}
	}
	return models.NewActivityTable(filtered)
}
