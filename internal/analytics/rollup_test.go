// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package analytics

import (
	"testing"
	"time"

	"github.com/tomtom215/stridelog/internal/config"
	"github.com/tomtom215/stridelog/internal/models"
)

func TestRollup_Monthly(t *testing.T) {
	table := testTable(
		testActivity(date(2024, time.January, 5), "Run", 10, 3600),
		testActivity(date(2024, time.January, 20), "Run", 5, 1800),
		testActivity(date(2024, time.March, 1), "Ride", 30, 5400),
	)

	buckets := Rollup(table, GranularityMonth)
	if len(buckets) != 2 {
		t.Fatalf("bucket count = %d, want 2 (sparse, February absent)", len(buckets))
	}

	jan := buckets[0]
	if jan.Period != "2024-01" {
		t.Errorf("Period = %q, want 2024-01", jan.Period)
	}
	if jan.Count != 2 || !almostEqual(jan.DistanceKm, 15) {
		t.Errorf("January = %d activities / %v km, want 2 / 15", jan.Count, jan.DistanceKm)
	}

	mar := buckets[1]
	if mar.Period != "2024-03" {
		t.Errorf("Period = %q, want 2024-03", mar.Period)
	}
	if !almostEqual(mar.CumulativeKm, 45) {
		t.Errorf("March CumulativeKm = %v, want 45", mar.CumulativeKm)
	}
}

func TestRollup_QuarterAndYearLabels(t *testing.T) {
	table := testTable(
		testActivity(date(2024, time.May, 5), "Run", 10, 3600),
	)

	if got := Rollup(table, GranularityQuarter)[0].Period; got != "2024-Q2" {
		t.Errorf("quarter Period = %q, want 2024-Q2", got)
	}
	if got := Rollup(table, GranularityYear)[0].Period; got != "2024" {
		t.Errorf("year Period = %q, want 2024", got)
	}
	if got := Rollup(table, GranularityAllTime)[0].Period; got != "All Time" {
		t.Errorf("all-time Period = %q, want All Time", got)
	}
}

func TestRollup_EmptyTable(t *testing.T) {
	for _, g := range []Granularity{GranularityMonth, GranularityQuarter, GranularityYear, GranularityAllTime} {
		if got := Rollup(testTable(), g); len(got) != 0 {
			t.Errorf("Rollup(empty, %s) = %d buckets, want 0", g, len(got))
		}
	}
}

// Total distance must be conserved across any rollup granularity.
func TestRollup_DistanceConservation(t *testing.T) {
	table := testTable(
		testActivity(date(2023, time.December, 31), "Run", 12.3, 3600),
		testActivity(date(2024, time.January, 1), "Ride", 45.6, 5400),
		testActivity(date(2024, time.June, 15), "Swim", 1.5, 2400),
		testActivity(date(2024, time.June, 15), "Run", 8.2, 2900),
	)
	want := Summary(table).TotalKm

	for _, g := range []Granularity{GranularityMonth, GranularityQuarter, GranularityYear, GranularityAllTime} {
		var sum float64
		for _, b := range Rollup(table, g) {
			sum += b.DistanceKm
		}
		if !almostEqual(sum, want) {
			t.Errorf("granularity %s: summed %v km, want %v", g, sum, want)
		}
	}
}

func TestFillMissingBuckets(t *testing.T) {
	table := testTable(
		testActivity(date(2024, time.January, 5), "Run", 10, 3600),
		testActivity(date(2024, time.April, 5), "Run", 20, 3600),
	)

	filled := FillMissingBuckets(Rollup(table, GranularityMonth), GranularityMonth)
	if len(filled) != 4 {
		t.Fatalf("filled bucket count = %d, want 4", len(filled))
	}

	feb := filled[1]
	if feb.Period != "2024-02" || feb.Count != 0 {
		t.Errorf("gap bucket = %q count %d, want 2024-02 count 0", feb.Period, feb.Count)
	}
	if !almostEqual(feb.CumulativeKm, 10) {
		t.Errorf("gap bucket CumulativeKm = %v, want 10 (carried forward)", feb.CumulativeKm)
	}
}

func TestRollingAverage_ShorterPrefix(t *testing.T) {
	buckets := []models.RollupBucket{
		{Period: "2024-01", DistanceKm: 10},
		{Period: "2024-02", DistanceKm: 20},
		{Period: "2024-03", DistanceKm: 30},
	}

	points := RollingAverage(buckets, 2)
	want := []float64{10, 15, 25}
	if len(points) != len(want) {
		t.Fatalf("point count = %d, want %d", len(points), len(want))
	}
	for i, w := range want {
		if !almostEqual(points[i].RollingAvgKm, w) {
			t.Errorf("point %d RollingAvgKm = %v, want %v", i, points[i].RollingAvgKm, w)
		}
	}
}

func TestRollingAverage_WindowLargerThanSeries(t *testing.T) {
	buckets := []models.RollupBucket{
		{Period: "2024-01", DistanceKm: 10},
		{Period: "2024-02", DistanceKm: 20},
	}

	points := RollingAverage(buckets, 5)
	if !almostEqual(points[1].RollingAvgKm, 15) {
		t.Errorf("RollingAvgKm = %v, want 15 (average over available prefix)", points[1].RollingAvgKm)
	}
}

func TestComposition(t *testing.T) {
	table := testTable(
		testActivity(date(2024, time.January, 5), "Run", 10, 3600),
		testActivity(date(2024, time.January, 6), "Ride", 30, 5400),
		testActivity(date(2024, time.January, 7), "Run", 5, 1800),
	)

	rows := Composition(table, GranularityMonth, config.ActivityGroups())
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(rows))
	}
	// Running precedes Cycling in the configured display order.
	if rows[0].Group != config.GroupRunning || rows[0].Count != 2 {
		t.Errorf("first row = %s x%d, want Running x2", rows[0].Group, rows[0].Count)
	}
	if rows[1].Group != config.GroupCycling || !almostEqual(rows[1].DistanceKm, 30) {
		t.Errorf("second row = %s %v km, want Cycling 30", rows[1].Group, rows[1].DistanceKm)
	}
}

func TestYearOverYear(t *testing.T) {
	table := testTable(
		testActivity(date(2023, time.March, 5), "Run", 10, 3600),
		testActivity(date(2024, time.March, 5), "Run", 12, 3600),
		testActivity(date(2024, time.July, 5), "Run", 8, 3600),
	)

	series := YearOverYear(table)
	if len(series) != 2 {
		t.Fatalf("series count = %d, want 2", len(series))
	}
	if series[0].Year != 2023 || series[1].Year != 2024 {
		t.Errorf("years = %d, %d, want 2023, 2024", series[0].Year, series[1].Year)
	}
	if len(series[1].Months) != 2 {
		t.Errorf("2024 month count = %d, want 2 (sparse)", len(series[1].Months))
	}
	if series[1].Months[0].Month != time.March || !almostEqual(series[1].Months[0].DistanceKm, 12) {
		t.Errorf("2024 first month = %v %v km, want March 12", series[1].Months[0].Month, series[1].Months[0].DistanceKm)
	}
}

func TestParseGranularity(t *testing.T) {
	if _, err := ParseGranularity("month"); err != nil {
		t.Errorf("ParseGranularity(month) error = %v", err)
	}
	if _, err := ParseGranularity("weekly"); err == nil {
		t.Error("ParseGranularity(weekly) expected an error")
	}
}
