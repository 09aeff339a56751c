// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package stravaimport

import (
	"regexp"
	"strings"
)

// raceDetector classifies activities as races from their name, description,
// and the export's workout-type column when present. All matching is
// case-insensitive substring matching, with an anti-pattern pass first so
// that "marathon training" or "pre race shakeout" never count as races.
type raceDetector struct {
	xcWord *regexp.Regexp
}

func newRaceDetector() *raceDetector {
	return &raceDetector{
		// "xc" as a standalone word; plain substring matching would hit
		// "exercise".
		xcWord: regexp.MustCompile(`\bxc\b`),
	}
}

// antiPatterns indicate NOT a race even when a race keyword is present.
var antiPatterns = []string{
	"1/3 marathon",
	"almost half marathon",
	"almost marathon",
	"almost half",
	"pre race",
	"post race",
	"training",
	"recovery",
	"worth missing parkrun",
	"missing parkrun",
	"skip parkrun",
	"skipped parkrun",
	"race across world",
	"featured in race",
	"route",
	"half ben nevis",
	"halfway",
	"too long 10k",
}

// strongKeywords are unambiguous race terms, checked against the name.
var strongKeywords = []string{
	"parkrun",
	"park run",
	"half marathon",
	"marathon",
	"ultra marathon",
	"triathlon",
	"duathlon",
	"ironman",
	"10k race",
	"5k race",
	"championship",
	"championships",
	"xc race",
	"xc run",
}

// mediumKeywords are standalone distance references like "City Name 10k".
var mediumKeywords = []string{
	"10k",
	"5k",
	"10km",
	"5km",
	"10,000",
	"5,000",
}

// IsRace reports whether the activity looks like a race. The workout-type
// column, when the export carries one, is an explicit marker and wins
// outright; otherwise the name/description heuristic applies.
func (d *raceDetector) IsRace(name, description, workoutType string) bool {
	if strings.EqualFold(strings.TrimSpace(workoutType), "Race") {
		return true
	}

	nameLower := strings.ToLower(name)
	combined := strings.TrimSpace(nameLower + " " + strings.ToLower(description))

	for _, pattern := range antiPatterns {
		if strings.Contains(combined, pattern) {
			return false
		}
	}

	for _, keyword := range strongKeywords {
		if strings.Contains(nameLower, keyword) {
			return true
		}
	}

	if d.xcWord.MatchString(nameLower) {
		return true
	}

	for _, keyword := range mediumKeywords {
		if strings.Contains(nameLower, keyword) {
			return true
		}
	}

	// "race" alone is a weak indicator and needs the exclusions above to
	// have already passed.
	if strings.Contains(nameLower, "race") && !strings.Contains(nameLower, "race across") {
		return true
	}

	// "Chippenham Half" style names.
	if strings.Contains(nameLower, " half") || strings.HasSuffix(nameLower, "half") {
		if !strings.Contains(nameLower, "ben nevis") && !strings.Contains(nameLower, "way") {
			return true
		}
	}

	return strings.Contains(nameLower, "relay")
}
