// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package analytics

import (
	"fmt"
	"time"

	"github.com/tomtom215/stridelog/internal/models"
)

// Obsession factor weights. The five factors sum to a 0-100 scale.
const (
	// 5 activities/week saturates frequency at 25 points.
	frequencyPerWeekFactor = 5.0
	frequencyMax           = 25.0

	// 10 hours/week saturates volume at 25 points.
	volumePerHourFactor = 2.5
	volumeMax           = 25.0

	consistencyMax = 20.0

	// 5 distinct activity types saturate variety at 15 points.
	varietyPerTypeFactor = 3.0
	varietyMax           = 15.0

	balanceMax = 15.0
)

// obsessionLevel is one band of the 0-100 scale.
type obsessionLevel struct {
	threshold   int
	level       string
	description string
}

// obsessionLevels in descending threshold order; the first band whose
// threshold the score meets applies.
var obsessionLevels = []obsessionLevel{
	{85, "Exercise Addict", "You probably dream about workouts. Your rest days need rest days."},
	{70, "Fitness Fanatic", "Your gear is always ready to go. Exercise is a lifestyle, not a hobby."},
	{55, "Committed Crusher", "You've got a routine and you stick to it. Rain or shine, you're out there."},
	{40, "Enthusiastic Amateur", "You're keen when the weather's nice. Mostly nice."},
	{25, "Weekend Warrior", "Mondays are for recovery. And Tuesdays. Actually, most days really."},
	{10, "Casual Dabbler", "You exercise sometimes. When you remember. Or when your jeans get tight."},
	{0, "Couch Enthusiast", "You're more of a 'spiritual' athlete. Thinking about it counts, right?"},
}

// Obsession scores how obsessed the athlete is with exercise on a 0-100
// scale from five factors: frequency (25), volume (25), consistency (20),
// variety (15), and weekday/weekend balance (15). An empty table lands in
// the lowest band with a zero score.
func Obsession(t *models.ActivityTable) models.ObsessionScore {
	if t.Len() == 0 {
		return levelFor(0, models.ObsessionScore{})
	}

	spanDays := t.SpanDays()
	if spanDays < 1 {
		spanDays = 1
	}

	var totalHours float64
	activeWeeks := make(map[string]bool)
	types := make(map[string]bool)
	var weekendCount int
	for _, a := range t.Rows() {
		totalHours += a.DurationHours()
		year, week := a.Time.ISOWeek()
		activeWeeks[fmt.Sprintf("%d-%02d", year, week)] = true
		types[a.Type] = true
		if wd := a.Time.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekendCount++
		}
	}

	total := t.Len()
	perWeek := float64(total) / spanDays * 7
	frequency := min(frequencyMax, perWeek*frequencyPerWeekFactor)

	hoursPerWeek := totalHours / spanDays * 7
	volume := min(volumeMax, hoursPerWeek*volumePerHourFactor)

	totalWeeks := spanDays / 7
	if totalWeeks < 1 {
		totalWeeks = 1
	}
	consistency := min(consistencyMax, float64(len(activeWeeks))/totalWeeks*consistencyMax)

	variety := min(varietyMax, float64(len(types))*varietyPerTypeFactor)

	weekdayCount := total - weekendCount
	balance := float64(min(weekdayCount, weekendCount)) / float64(total) * balanceMax

	score := models.ObsessionScore{
		Frequency:   frequency,
		Volume:      volume,
		Consistency: consistency,
		Variety:     variety,
		Balance:     balance,
	}
	return levelFor(int(frequency+volume+consistency+variety+balance), score)
}

func levelFor(total int, score models.ObsessionScore) models.ObsessionScore {
	score.Score = total
	for _, band := range obsessionLevels {
		if total >= band.threshold {
			score.Level = band.level
			score.Description = band.description
			break
		}
	}
	return score
}
