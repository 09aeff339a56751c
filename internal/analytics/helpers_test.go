// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tomtom215/stridelog/internal/config"
	"github.com/tomtom215/stridelog/internal/models"
)

// testActivity builds one activity with the derived fields filled in the
// way the loader would.
func testActivity(ts time.Time, activityType string, distanceKm, durationS float64) models.Activity {
	var speed float64
	if durationS > 0 && distanceKm > 0 {
		speed = distanceKm / (durationS / 3600)
	}
	return models.Activity{
		ID:          uuid.New(),
		Time:        ts.UTC(),
		Type:        activityType,
		Group:       config.ActivityGroup(activityType),
		DistanceKm:  distanceKm,
		DurationS:   durationS,
		AvgSpeedKmh: speed,
	}
}

// testTable builds a canonical table, sorting the rows by time the way
// the loader does.
func testTable(activities ...models.Activity) *models.ActivityTable {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Time.Before(activities[j].Time)
	})
	return models.NewActivityTable(activities)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
