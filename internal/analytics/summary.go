// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package analytics

import (
	"github.com/tomtom215/stridelog/internal/models"
)

// Summary totals the table's distance, duration, and elevation. An empty
// table yields all zeros.
func Summary(t *models.ActivityTable) models.SummaryStats {
	var stats models.SummaryStats
	for _, a := range t.Rows() {
		stats.Count++
		stats.TotalKm += a.DistanceKm
		stats.TotalHours += a.DurationHours()
		stats.TotalElevation += a.ElevationM
	}
	return stats
}

// Records extracts the personal records. Rows are scanned in time order
// and a record is only replaced by a strictly greater value, so ties
// resolve to the earliest occurrence. Records with an unknown (zero)
// average speed never qualify for the fastest-speed record.
func Records(t *models.ActivityTable) models.PersonalRecords {
	var records models.PersonalRecords
	for i := range t.Rows() {
		a := &t.Rows()[i]
		if records.LongestDistance == nil || a.DistanceKm > records.LongestDistance.DistanceKm {
			records.LongestDistance = a
		}
		if records.LongestDuration == nil || a.DurationS > records.LongestDuration.DurationS {
			records.LongestDuration = a
		}
		if records.MostElevation == nil || a.ElevationM > records.MostElevation.ElevationM {
			records.MostElevation = a
		}
		if a.AvgSpeedKmh > 0 {
			if records.FastestSpeed == nil || a.AvgSpeedKmh > records.FastestSpeed.AvgSpeedKmh {
				records.FastestSpeed = a
			}
		}
	}
	return records
}
