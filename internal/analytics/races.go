// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package analytics

import (
	"fmt"

	"github.com/tomtom215/stridelog/internal/config"
	"github.com/tomtom215/stridelog/internal/models"
)

// Races returns the race-flagged activities, most recent first.
func Races(t *models.ActivityTable) []models.RaceResult {
	rows := t.Rows()
	races := make([]models.RaceResult, 0)
	// Rows are time-ascending; walk backwards for newest-first output.
	for i := len(rows) - 1; i >= 0; i-- {
		a := rows[i]
		if !a.IsRace {
			continue
		}
		races = append(races, models.RaceResult{
			Name:          a.Name,
			Date:          a.Time,
			DistanceKm:    a.DistanceKm,
			DurationS:     a.DurationS,
			FormattedTime: FormatRaceTime(a.DurationS),
			Type:          a.Type,
		})
	}
	return races
}

// BestRaceTimes extracts the fastest running activity within each standard
// race-distance band. All running activities are candidates, not only
// race-flagged ones, since many people run race distances in training.
// Ties resolve to the earliest occurrence. A band with no candidate is
// nil.
func BestRaceTimes(t *models.ActivityTable) models.BestRaceTimes {
	best := make(map[string]*models.BestRaceTime, len(config.RaceBands))

	for _, a := range t.Rows() {
		if a.Group != config.GroupRunning {
			continue
		}
		for _, band := range config.RaceBands {
			if a.DistanceKm < band.MinKm || a.DistanceKm > band.MaxKm {
				continue
			}
			current := best[band.Name]
			if current == nil || a.DurationS < current.DurationS {
				best[band.Name] = &models.BestRaceTime{
					Name:          a.Name,
					Date:          a.Time,
					DistanceKm:    a.DistanceKm,
					DurationS:     a.DurationS,
					FormattedTime: FormatRaceTime(a.DurationS),
				}
			}
		}
	}

	return models.BestRaceTimes{
		FiveK:    best["5k"],
		TenK:     best["10k"],
		Half:     best["half"],
		Marathon: best["marathon"],
	}
}

// FormatRaceTime renders a duration in seconds as H:MM:SS, or M:SS under
// an hour.
func FormatRaceTime(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
