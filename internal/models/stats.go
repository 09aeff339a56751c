// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package models

import "time"

// SummaryStats holds totals for a set of activities. Durations are
// converted to hours here, at the presentation boundary.
type SummaryStats struct {
	Count          int     `json:"count"`
	TotalKm        float64 `json:"total_distance_km"`
	TotalHours     float64 `json:"total_duration_hours"`
	TotalElevation float64 `json:"total_elevation_m"`
}

// PersonalRecords carries the full record achieving each tracked maximum,
// so consumers can show date and type alongside the value. Ties resolve to
// the earliest occurrence. Nil entries mean the table had no qualifying
// record (for example, no record with a known speed).
type PersonalRecords struct {
	LongestDistance *Activity `json:"longest_distance,omitempty"`
	LongestDuration *Activity `json:"longest_duration,omitempty"`
	MostElevation   *Activity `json:"most_elevation,omitempty"`
	FastestSpeed    *Activity `json:"fastest_speed,omitempty"`
}

// FunMetrics are comparative statistics against physical reference
// constants. ActivitiesPerWeek uses the actual first-to-last activity span
// as its denominator, not a fixed 52-week year.
type FunMetrics struct {
	TotalKm           float64 `json:"total_distance_km"`
	TotalElevationM   float64 `json:"total_elevation_m"`
	TotalHours        float64 `json:"total_hours"`
	TotalActivities   int     `json:"total_activities"`
	TimesAroundEarth  float64 `json:"times_around_earth"`
	TimesUpEverest    float64 `json:"times_up_everest"`
	DaysActive        float64 `json:"days_active"`
	ActivitiesPerWeek float64 `json:"activities_per_week"`
}

// CheekyMetrics restate athletic totals as everyday comparisons.
type CheekyMetrics struct {
	Marathons       float64 `json:"marathons"`
	Bananas         float64 `json:"bananas"`
	FootballPitches float64 `json:"football_pitches"`

	EiffelTowers float64 `json:"eiffel_towers"`
	EmpireStates float64 `json:"empire_states"`
	BurjKhalifas float64 `json:"burj_khalifas"`

	FriendsEpisodes float64 `json:"friends_episodes"`
	LOTRTrilogies   float64 `json:"lotr_trilogies"`

	BigMacs     float64 `json:"big_macs"`
	PizzaSlices float64 `json:"pizza_slices"`
	Beers       float64 `json:"beers"`

	FasterThanSloth float64 `json:"faster_than_sloth"`
	PercentOfBolt   float64 `json:"percent_of_bolt"`
}

// ObsessionScore is the 0-100 exercise-obsession composite with its band
// label and description.
type ObsessionScore struct {
	Score       int     `json:"score"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
	Frequency   float64 `json:"frequency_score"`
	Volume      float64 `json:"volume_score"`
	Consistency float64 `json:"consistency_score"`
	Variety     float64 `json:"variety_score"`
	Balance     float64 `json:"balance_score"`
}

// RollupBucket is one calendar bucket of an aggregated rollup. Buckets with
// no activity are absent (sparse) unless densified explicitly.
type RollupBucket struct {
	// Period is the bucket label: "2024-03", "2024-Q1", "2024", or "All Time".
	Period string `json:"period"`

	// Start is the bucket's start instant, used for ordering and
	// densification. Zero for the all-time bucket.
	Start time.Time `json:"start"`

	DistanceKm   float64 `json:"distance_km"`
	DurationS    float64 `json:"duration_s"`
	ElevationM   float64 `json:"elevation_m"`
	Count        int     `json:"count"`
	CumulativeKm float64 `json:"cumulative_km"`
}

// DurationHours converts the bucket's summed duration to hours.
func (b RollupBucket) DurationHours() float64 {
	return b.DurationS / 3600
}

// TrendPoint pairs a rollup bucket with its trailing moving-average
// distance for trend charts.
type TrendPoint struct {
	RollupBucket
	RollingAvgKm float64 `json:"rolling_avg_km"`
}

// CompositionRow is one (bucket, group) cell of the activity-composition
// breakdown that backs stacked-series charts.
type CompositionRow struct {
	Period     string  `json:"period"`
	Group      string  `json:"group"`
	Count      int     `json:"count"`
	DistanceKm float64 `json:"distance_km"`
}

// MonthValue is one month of a year-over-year series. Months with no data
// are absent from the series.
type MonthValue struct {
	Month      time.Month `json:"month"`
	DistanceKm float64    `json:"distance_km"`
	Count      int        `json:"count"`
}

// YearSeries is one year's monthly distances for year-over-year overlay.
type YearSeries struct {
	Year   int          `json:"year"`
	Months []MonthValue `json:"months"`
}

// WeekdayCount is a frequency bin of the day-of-week histogram. All seven
// weekdays are present, zero-filled, since the domain is fixed.
type WeekdayCount struct {
	Weekday time.Weekday `json:"weekday"`
	Label   string       `json:"label"`
	Count   int          `json:"count"`
}

// HourCount is a frequency bin of the hour-of-day histogram; all 24 hours
// are present, zero-filled.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// TimeOfDayCount buckets activity starts into named day segments.
type TimeOfDayCount struct {
	Segment string `json:"segment"`
	Count   int    `json:"count"`
}

// CalendarCell is one (ISO week, weekday) cell of the calendar-density
// heatmap. Cells with no activity are absent.
type CalendarCell struct {
	Week    int          `json:"week"`
	Weekday time.Weekday `json:"weekday"`
	Count   int          `json:"count"`
}

// RaceResult is one race-flagged activity for the race history listing.
type RaceResult struct {
	Name          string    `json:"name"`
	Date          time.Time `json:"date"`
	DistanceKm    float64   `json:"distance_km"`
	DurationS     float64   `json:"duration_s"`
	FormattedTime string    `json:"formatted_time"`
	Type          string    `json:"type"`
}

// BestRaceTime is the fastest activity within one standard race-distance
// band.
type BestRaceTime struct {
	Name          string    `json:"name"`
	Date          time.Time `json:"date"`
	DistanceKm    float64   `json:"distance_km"`
	DurationS     float64   `json:"duration_s"`
	FormattedTime string    `json:"formatted_time"`
}

// BestRaceTimes maps band name ("5k", "10k", "half", "marathon") to the
// best result, nil when no activity falls in that band.
type BestRaceTimes struct {
	FiveK    *BestRaceTime `json:"5k"`
	TenK     *BestRaceTime `json:"10k"`
	Half     *BestRaceTime `json:"half"`
	Marathon *BestRaceTime `json:"marathon"`
}
