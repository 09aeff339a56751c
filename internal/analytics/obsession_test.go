// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package analytics

import (
	"testing"
	"time"

	"github.com/tomtom215/stridelog/internal/models"
)

func TestObsession_EmptyTable(t *testing.T) {
	score := Obsession(testTable())
	if score.Score != 0 {
		t.Errorf("Score = %d, want 0", score.Score)
	}
	if score.Level != "Couch Enthusiast" {
		t.Errorf("Level = %q, want Couch Enthusiast", score.Level)
	}
}

func TestObsession_FactorBounds(t *testing.T) {
	// Two activities a day for four weeks, long sessions, varied types,
	// spread over weekdays and weekends. Every factor should be at or
	// near its cap.
	var activities []models.Activity
	types := []string{"Run", "Ride", "Swim", "Hike", "Workout"}
	start := date(2024, time.June, 1)
	for day := 0; day < 28; day++ {
		for session := 0; session < 2; session++ {
			ts := start.AddDate(0, 0, day).Add(time.Duration(session) * 6 * time.Hour)
			activities = append(activities, testActivity(ts, types[day%len(types)], 10, 5400))
		}
	}

	score := Obsession(testTable(activities...))
	if score.Frequency != 25 {
		t.Errorf("Frequency = %v, want capped at 25", score.Frequency)
	}
	if score.Volume != 25 {
		t.Errorf("Volume = %v, want capped at 25", score.Volume)
	}
	if score.Consistency != 20 {
		t.Errorf("Consistency = %v, want capped at 20", score.Consistency)
	}
	if score.Variety != 15 {
		t.Errorf("Variety = %v, want capped at 15 (5 types)", score.Variety)
	}
	if score.Balance <= 0 || score.Balance > 15 {
		t.Errorf("Balance = %v, want in (0, 15]", score.Balance)
	}
	if score.Score < 85 {
		t.Errorf("Score = %d, want >= 85 for a daily grinder", score.Score)
	}
	if score.Level != "Exercise Addict" {
		t.Errorf("Level = %q, want Exercise Addict", score.Level)
	}
}

func TestObsession_SparseHistory(t *testing.T) {
	// A handful of short activities across a year scores low.
	table := testTable(
		testActivity(date(2024, time.January, 6), "Run", 5, 1800),
		testActivity(date(2024, time.April, 13), "Run", 5, 1800),
		testActivity(date(2024, time.August, 3), "Run", 5, 1800),
		testActivity(date(2024, time.December, 28), "Run", 5, 1800),
	)

	score := Obsession(table)
	if score.Score >= 25 {
		t.Errorf("Score = %d, want < 25 for a sparse history", score.Score)
	}
	if score.Level == "" || score.Description == "" {
		t.Error("Level and Description must always be populated")
	}
}

func TestObsession_ScoreWithinScale(t *testing.T) {
	tables := []*models.ActivityTable{
		testTable(),
		testTable(testActivity(date(2024, time.June, 1), "Run", 5, 1800)),
		testTable(
			testActivity(date(2024, time.June, 1), "Run", 50, 20000),
			testActivity(date(2024, time.June, 1), "Ride", 100, 20000),
		),
	}
	for i, table := range tables {
		score := Obsession(table)
		if score.Score < 0 || score.Score > 100 {
			t.Errorf("table %d: Score = %d, want within [0, 100]", i, score.Score)
		}
	}
}
