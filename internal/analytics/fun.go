// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package analytics

import (
	"time"

	"github.com/tomtom215/stridelog/internal/config"
	"github.com/tomtom215/stridelog/internal/models"
)

// Everyday-comparison reference constants.
const (
	bananaLengthM      = 0.18
	footballPitchM     = 105.0
	eiffelTowerM       = 330.0
	empireStateM       = 443.0
	burjKhalifaM       = 828.0
	friendsEpisodeMin  = 22.0
	lotrTrilogyMin     = 558.0
	caloriesPerKm      = 50.0
	bigMacCalories     = 563.0
	pizzaSliceCalories = 285.0
	beerCalories       = 150.0
	slothSpeedKmh      = 0.24
	boltTopSpeedKmh    = 44.72
)

// Fun computes the comparative statistics. An empty table yields all
// zeros. ActivitiesPerWeek divides by the actual first-to-last span in
// weeks, with a one-week floor so single-burst histories do not explode
// the rate.
func Fun(t *models.ActivityTable) models.FunMetrics {
	var fun models.FunMetrics
	if t.Len() == 0 {
		return fun
	}

	activeDays := make(map[string]bool)
	for _, a := range t.Rows() {
		fun.TotalKm += a.DistanceKm
		fun.TotalElevationM += a.ElevationM
		fun.TotalHours += a.DurationHours()
		fun.TotalActivities++
		activeDays[a.Time.Format(time.DateOnly)] = true
	}

	fun.TimesAroundEarth = fun.TotalKm / config.EarthCircumferenceKm
	fun.TimesUpEverest = fun.TotalElevationM / config.EverestHeightM
	fun.DaysActive = float64(len(activeDays))

	weeks := t.SpanDays() / 7
	if weeks < 1 {
		weeks = 1
	}
	fun.ActivitiesPerWeek = float64(fun.TotalActivities) / weeks

	return fun
}

// Cheeky restates the totals as everyday comparisons. Speed comparisons
// use the table's mean of known average speeds; both are 0 when no record
// has a known speed.
func Cheeky(t *models.ActivityTable) models.CheekyMetrics {
	var cheeky models.CheekyMetrics
	if t.Len() == 0 {
		return cheeky
	}

	var totalKm, totalElevationM, totalHours float64
	var speedSum float64
	var speedCount int
	for _, a := range t.Rows() {
		totalKm += a.DistanceKm
		totalElevationM += a.ElevationM
		totalHours += a.DurationHours()
		if a.AvgSpeedKmh > 0 {
			speedSum += a.AvgSpeedKmh
			speedCount++
		}
	}

	cheeky.Marathons = totalKm / config.MarathonDistanceKm
	cheeky.Bananas = totalKm * 1000 / bananaLengthM
	cheeky.FootballPitches = totalKm * 1000 / footballPitchM

	cheeky.EiffelTowers = totalElevationM / eiffelTowerM
	cheeky.EmpireStates = totalElevationM / empireStateM
	cheeky.BurjKhalifas = totalElevationM / burjKhalifaM

	totalMinutes := totalHours * 60
	cheeky.FriendsEpisodes = totalMinutes / friendsEpisodeMin
	cheeky.LOTRTrilogies = totalMinutes / lotrTrilogyMin

	calories := totalKm * caloriesPerKm
	cheeky.BigMacs = calories / bigMacCalories
	cheeky.PizzaSlices = calories / pizzaSliceCalories
	cheeky.Beers = calories / beerCalories

	if speedCount > 0 {
		meanSpeed := speedSum / float64(speedCount)
		cheeky.FasterThanSloth = meanSpeed / slothSpeedKmh
		cheeky.PercentOfBolt = meanSpeed / boltTopSpeedKmh * 100
	}

	return cheeky
}
