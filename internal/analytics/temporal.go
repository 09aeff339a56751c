// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package analytics

import (
	"sort"
	"time"

	"github.com/tomtom215/stridelog/internal/models"
)

// DayOfWeek counts activity starts per weekday. The result always has
// seven zero-filled bins, Monday first, since the domain is fixed.
func DayOfWeek(t *models.ActivityTable) []models.WeekdayCount {
	counts := make(map[time.Weekday]int, 7)
	for _, a := range t.Rows() {
		counts[a.Time.Weekday()]++
	}

	// Monday-first display order.
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	bins := make([]models.WeekdayCount, 0, 7)
	for _, day := range order {
		bins = append(bins, models.WeekdayCount{
			Weekday: day,
			Label:   day.String(),
			Count:   counts[day],
		})
	}
	return bins
}

// HourOfDay counts activity starts per hour. All 24 hours are present,
// zero-filled.
func HourOfDay(t *models.ActivityTable) []models.HourCount {
	counts := make([]int, 24)
	for _, a := range t.Rows() {
		counts[a.Time.Hour()]++
	}

	bins := make([]models.HourCount, 24)
	for hour := range bins {
		bins[hour] = models.HourCount{Hour: hour, Count: counts[hour]}
	}
	return bins
}

// timeOfDaySegment names the day segment an hour falls in.
func timeOfDaySegment(hour int) string {
	switch {
	case hour < 6:
		return "Night"
	case hour < 12:
		return "Morning"
	case hour < 18:
		return "Afternoon"
	default:
		return "Evening"
	}
}

// TimeOfDay buckets activity starts into four named day segments, in
// chronological segment order. All four segments are present, zero-filled.
func TimeOfDay(t *models.ActivityTable) []models.TimeOfDayCount {
	counts := make(map[string]int, 4)
	for _, a := range t.Rows() {
		counts[timeOfDaySegment(a.Time.Hour())]++
	}

	segments := []string{"Night", "Morning", "Afternoon", "Evening"}
	bins := make([]models.TimeOfDayCount, 0, 4)
	for _, segment := range segments {
		bins = append(bins, models.TimeOfDayCount{Segment: segment, Count: counts[segment]})
	}
	return bins
}

// CalendarDensity counts activities per (ISO week, weekday) cell for the
// given year's heatmap. Cells with no activity are absent. Weeks follow
// ISO 8601, so a late-December activity can land in week 1 of the next
// ISO year; such activities are attributed to the requested calendar year
// by their date.
func CalendarDensity(t *models.ActivityTable, year int) []models.CalendarCell {
	type cellKey struct {
		week    int
		weekday time.Weekday
	}

	counts := make(map[cellKey]int)
	for _, a := range t.Rows() {
		if a.Time.Year() != year {
			continue
		}
		_, week := a.Time.ISOWeek()
		counts[cellKey{week: week, weekday: a.Time.Weekday()}]++
	}

	cells := make([]models.CalendarCell, 0, len(counts))
	for key, count := range counts {
		cells = append(cells, models.CalendarCell{
			Week:    key.week,
			Weekday: key.weekday,
			Count:   count,
		})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Week != cells[j].Week {
			return cells[i].Week < cells[j].Week
		}
		return cells[i].Weekday < cells[j].Weekday
	})
	return cells
}
