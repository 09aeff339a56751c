// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package analytics

import (
	"testing"
	"time"

	"github.com/tomtom215/stridelog/internal/config"
)

func TestByWindow(t *testing.T) {
	now := time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)
	table := testTable(
		testActivity(date(2024, time.June, 29), "Run", 5, 1800),
		testActivity(date(2024, time.June, 10), "Run", 10, 3600),
		testActivity(date(2024, time.January, 5), "Ride", 40, 5400),
	)

	tests := []struct {
		name     string
		daysBack int
		want     int
	}{
		{"last 7 days", 7, 1},
		{"last 30 days", 30, 2},
		{"last 365 days", 365, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByWindow(table, now, tt.daysBack)
			if got.Len() != tt.want {
				t.Errorf("ByWindow(%d).Len() = %d, want %d", tt.daysBack, got.Len(), tt.want)
			}
		})
	}
}

func TestByWindow_EmptyTable(t *testing.T) {
	got := ByWindow(testTable(), time.Now().UTC(), 30)
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
}

func TestByGroups(t *testing.T) {
	table := testTable(
		testActivity(date(2024, time.June, 1), "Run", 5, 1800),
		testActivity(date(2024, time.June, 2), "Ride", 30, 5400),
		testActivity(date(2024, time.June, 3), "Swim", 1.5, 2400),
	)

	got := ByGroups(table, []string{config.GroupRunning, config.GroupCycling})
	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}
	for _, a := range got.Rows() {
		if a.Group == config.GroupSwimming {
			t.Error("swimming activity survived a running+cycling filter")
		}
	}
}

func TestByGroups_EmptySelectionSelectsNothing(t *testing.T) {
	table := testTable(
		testActivity(date(2024, time.June, 1), "Run", 5, 1800),
	)
	if got := ByGroups(table, nil); got.Len() != 0 {
		t.Errorf("empty selection Len() = %d, want 0", got.Len())
	}
}

// Filters compose by intersection, so application order must not change
// the result.
func TestFilters_Commute(t *testing.T) {
	now := time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)
	table := testTable(
		testActivity(date(2024, time.June, 25), "Run", 5, 1800),
		testActivity(date(2024, time.June, 26), "Ride", 30, 5400),
		testActivity(date(2024, time.March, 1), "Run", 21, 7200),
	)
	groups := []string{config.GroupRunning}

	windowFirst := ByGroups(ByWindow(table, now, 30), groups)
	groupsFirst := ByWindow(ByGroups(table, groups), now, 30)

	if windowFirst.Len() != groupsFirst.Len() {
		t.Fatalf("filter order changed the result: %d vs %d", windowFirst.Len(), groupsFirst.Len())
	}
	for i := range windowFirst.Rows() {
		if windowFirst.Rows()[i].ID != groupsFirst.Rows()[i].ID {
			t.Errorf("row %d differs between filter orders", i)
		}
	}
}
