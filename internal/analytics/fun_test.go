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

func TestFun_EmptyTable(t *testing.T) {
	fun := Fun(testTable())
	if fun.TotalActivities != 0 || fun.TotalKm != 0 || fun.ActivitiesPerWeek != 0 {
		t.Errorf("empty table Fun = %+v, want all zeros", fun)
	}
}

func TestFun_TwoActivityScenario(t *testing.T) {
	a := testActivity(date(2024, time.June, 1), "Run", 10, 3600)
	a.ElevationM = 100
	b := testActivity(date(2024, time.June, 15), "Ride", 30, 5400)
	b.ElevationM = 400

	fun := Fun(testTable(a, b))
	if fun.TotalActivities != 2 {
		t.Errorf("TotalActivities = %d, want 2", fun.TotalActivities)
	}
	if !almostEqual(fun.TotalKm, 40) {
		t.Errorf("TotalKm = %v, want 40", fun.TotalKm)
	}
	if !almostEqual(fun.TimesAroundEarth, 40/config.EarthCircumferenceKm) {
		t.Errorf("TimesAroundEarth = %v", fun.TimesAroundEarth)
	}
	if !almostEqual(fun.TimesUpEverest, 500/config.EverestHeightM) {
		t.Errorf("TimesUpEverest = %v", fun.TimesUpEverest)
	}
	if fun.DaysActive != 2 {
		t.Errorf("DaysActive = %v, want 2", fun.DaysActive)
	}
	// 14-day span = 2 weeks, 2 activities.
	if !almostEqual(fun.ActivitiesPerWeek, 1) {
		t.Errorf("ActivitiesPerWeek = %v, want 1", fun.ActivitiesPerWeek)
	}
}

// A single burst of activity uses the one-week floor, not a zero span.
func TestFun_SingleDayFloor(t *testing.T) {
	fun := Fun(testTable(
		testActivity(date(2024, time.June, 1), "Run", 5, 1800),
		testActivity(date(2024, time.June, 1), "Ride", 20, 3600),
	))
	if !almostEqual(fun.ActivitiesPerWeek, 2) {
		t.Errorf("ActivitiesPerWeek = %v, want 2", fun.ActivitiesPerWeek)
	}
}

func TestCheeky_EmptyTable(t *testing.T) {
	cheeky := Cheeky(testTable())
	if cheeky.Marathons != 0 || cheeky.Bananas != 0 || cheeky.PercentOfBolt != 0 {
		t.Errorf("empty table Cheeky = %+v, want all zeros", cheeky)
	}
}

func TestCheeky_DistanceComparisons(t *testing.T) {
	// 42.195 km in exactly one marathon.
	table := testTable(testActivity(date(2024, time.June, 1), "Run", config.MarathonDistanceKm, 4*3600))

	cheeky := Cheeky(table)
	if !almostEqual(cheeky.Marathons, 1) {
		t.Errorf("Marathons = %v, want 1", cheeky.Marathons)
	}
	if !almostEqual(cheeky.Bananas, config.MarathonDistanceKm*1000/0.18) {
		t.Errorf("Bananas = %v", cheeky.Bananas)
	}
	if cheeky.BigMacs <= 0 {
		t.Errorf("BigMacs = %v, want > 0", cheeky.BigMacs)
	}
}

func TestCheeky_SpeedComparisons(t *testing.T) {
	// 10 km in one hour: mean speed 10 km/h.
	table := testTable(testActivity(date(2024, time.June, 1), "Run", 10, 3600))

	cheeky := Cheeky(table)
	if !almostEqual(cheeky.FasterThanSloth, 10/0.24) {
		t.Errorf("FasterThanSloth = %v, want %v", cheeky.FasterThanSloth, 10/0.24)
	}
	if !almostEqual(cheeky.PercentOfBolt, 10/44.72*100) {
		t.Errorf("PercentOfBolt = %v, want %v", cheeky.PercentOfBolt, 10/44.72*100)
	}
}

func TestCheeky_NoKnownSpeeds(t *testing.T) {
	table := testTable(testActivity(date(2024, time.June, 1), "Weight Training", 0, 3600))

	cheeky := Cheeky(table)
	if cheeky.FasterThanSloth != 0 || cheeky.PercentOfBolt != 0 {
		t.Error("speed comparisons should be 0 when no activity has a known speed")
	}
}
