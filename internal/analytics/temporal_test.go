// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package analytics

import (
	"testing"
	"time"
)

func TestDayOfWeek_DenseZeroFilled(t *testing.T) {
	// 2024-06-03 is a Monday.
	table := testTable(
		testActivity(date(2024, time.June, 3), "Run", 5, 1800),
		testActivity(date(2024, time.June, 10), "Run", 5, 1800),
		testActivity(date(2024, time.June, 8), "Ride", 30, 5400),
	)

	bins := DayOfWeek(table)
	if len(bins) != 7 {
		t.Fatalf("bin count = %d, want 7", len(bins))
	}
	if bins[0].Weekday != time.Monday {
		t.Errorf("first bin = %v, want Monday", bins[0].Weekday)
	}
	if bins[0].Count != 2 {
		t.Errorf("Monday count = %d, want 2", bins[0].Count)
	}
	if bins[5].Weekday != time.Saturday || bins[5].Count != 1 {
		t.Errorf("Saturday bin = %v x%d, want Saturday x1", bins[5].Weekday, bins[5].Count)
	}
	if bins[6].Count != 0 {
		t.Errorf("Sunday count = %d, want 0 (zero-filled)", bins[6].Count)
	}
}

func TestHourOfDay_DenseZeroFilled(t *testing.T) {
	table := testTable(
		testActivity(time.Date(2024, time.June, 3, 7, 15, 0, 0, time.UTC), "Run", 5, 1800),
		testActivity(time.Date(2024, time.June, 4, 7, 45, 0, 0, time.UTC), "Run", 5, 1800),
		testActivity(time.Date(2024, time.June, 5, 18, 0, 0, 0, time.UTC), "Ride", 30, 5400),
	)

	bins := HourOfDay(table)
	if len(bins) != 24 {
		t.Fatalf("bin count = %d, want 24", len(bins))
	}
	if bins[7].Count != 2 {
		t.Errorf("hour 7 count = %d, want 2", bins[7].Count)
	}
	if bins[18].Count != 1 {
		t.Errorf("hour 18 count = %d, want 1", bins[18].Count)
	}
	if bins[3].Count != 0 {
		t.Errorf("hour 3 count = %d, want 0 (zero-filled)", bins[3].Count)
	}
}

func TestTimeOfDay_Segments(t *testing.T) {
	table := testTable(
		testActivity(time.Date(2024, time.June, 3, 5, 0, 0, 0, time.UTC), "Run", 5, 1800),
		testActivity(time.Date(2024, time.June, 4, 8, 0, 0, 0, time.UTC), "Run", 5, 1800),
		testActivity(time.Date(2024, time.June, 5, 13, 0, 0, 0, time.UTC), "Run", 5, 1800),
		testActivity(time.Date(2024, time.June, 6, 20, 0, 0, 0, time.UTC), "Run", 5, 1800),
	)

	bins := TimeOfDay(table)
	want := map[string]int{"Night": 1, "Morning": 1, "Afternoon": 1, "Evening": 1}
	if len(bins) != 4 {
		t.Fatalf("segment count = %d, want 4", len(bins))
	}
	for _, bin := range bins {
		if bin.Count != want[bin.Segment] {
			t.Errorf("%s count = %d, want %d", bin.Segment, bin.Count, want[bin.Segment])
		}
	}
}

func TestCalendarDensity(t *testing.T) {
	table := testTable(
		testActivity(date(2024, time.June, 3), "Run", 5, 1800),
		testActivity(date(2024, time.June, 3), "Ride", 30, 5400),
		testActivity(date(2023, time.June, 3), "Run", 5, 1800),
	)

	cells := CalendarDensity(table, 2024)
	if len(cells) != 1 {
		t.Fatalf("cell count = %d, want 1 (other year excluded, sparse)", len(cells))
	}
	cell := cells[0]
	if cell.Weekday != time.Monday || cell.Count != 2 {
		t.Errorf("cell = %v x%d, want Monday x2", cell.Weekday, cell.Count)
	}
	_, wantWeek := date(2024, time.June, 3).ISOWeek()
	if cell.Week != wantWeek {
		t.Errorf("cell Week = %d, want %d", cell.Week, wantWeek)
	}
}
