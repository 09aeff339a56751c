// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package analytics

import (
	"testing"
	"time"
)

func TestFormatRaceTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{3661, "1:01:01"},
		{125, "2:05"},
		{59, "0:59"},
		{3600, "1:00:00"},
		{7322, "2:02:02"},
	}

	for _, tt := range tests {
		if got := FormatRaceTime(tt.seconds); got != tt.want {
			t.Errorf("FormatRaceTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestRaces_NewestFirst(t *testing.T) {
	older := testActivity(date(2024, time.March, 1), "Run", 10, 2700)
	older.Name = "Spring 10k"
	older.IsRace = true
	newer := testActivity(date(2024, time.June, 1), "Run", 5, 1200)
	newer.Name = "Summer Parkrun"
	newer.IsRace = true
	training := testActivity(date(2024, time.May, 1), "Run", 12, 4000)

	races := Races(testTable(older, newer, training))
	if len(races) != 2 {
		t.Fatalf("race count = %d, want 2", len(races))
	}
	if races[0].Name != "Summer Parkrun" || races[1].Name != "Spring 10k" {
		t.Errorf("order = %q, %q, want newest first", races[0].Name, races[1].Name)
	}
	if races[0].FormattedTime != "20:00" {
		t.Errorf("FormattedTime = %q, want 20:00", races[0].FormattedTime)
	}
}

func TestRaces_EmptyTable(t *testing.T) {
	if races := Races(testTable()); len(races) != 0 {
		t.Errorf("race count = %d, want 0", len(races))
	}
}

func TestBestRaceTimes(t *testing.T) {
	slow5k := testActivity(date(2024, time.January, 6), "Run", 5.0, 1500)
	fast5k := testActivity(date(2024, time.March, 2), "Run", 5.1, 1320)
	tenK := testActivity(date(2024, time.April, 7), "Run", 10.1, 2900)
	ride := testActivity(date(2024, time.April, 8), "Ride", 21.1, 2400)
	longRun := testActivity(date(2024, time.May, 1), "Run", 30, 11000)

	best := BestRaceTimes(testTable(slow5k, fast5k, tenK, ride, longRun))

	if best.FiveK == nil || !almostEqual(best.FiveK.DurationS, 1320) {
		t.Errorf("FiveK = %+v, want the 1320s effort", best.FiveK)
	}
	if best.TenK == nil || !almostEqual(best.TenK.DurationS, 2900) {
		t.Errorf("TenK = %+v, want the 2900s effort", best.TenK)
	}
	// The 21.1 km ride is not running and must not fill the half band.
	if best.Half != nil {
		t.Errorf("Half = %+v, want nil", best.Half)
	}
	if best.Marathon != nil {
		t.Errorf("Marathon = %+v, want nil (30 km is between bands)", best.Marathon)
	}
}

func TestBestRaceTimes_TieGoesToEarliest(t *testing.T) {
	first := testActivity(date(2024, time.January, 6), "Run", 5.0, 1400)
	second := testActivity(date(2024, time.February, 3), "Run", 5.0, 1400)

	best := BestRaceTimes(testTable(first, second))
	if best.FiveK == nil || !best.FiveK.Date.Equal(first.Time) {
		t.Error("duration tie did not resolve to the earliest run")
	}
}
