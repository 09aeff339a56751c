// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package config

// Activity group names. The group is a coarse category derived from the
// free-text activity type the export carries.
const (
	GroupRunning      = "Running"
	GroupCycling      = "Cycling"
	GroupSwimming     = "Swimming"
	GroupWalking      = "Walking"
	GroupStrength     = "Strength"
	GroupWinterSports = "Winter Sports"
	GroupTeamSports   = "Team Sports"
	GroupOther        = "Other"
)

// Physical reference constants for comparative metrics.
const (
	// EarthCircumferenceKm is the equatorial circumference of the Earth.
	EarthCircumferenceKm = 40075.0

	// EverestHeightM is the summit elevation of Mount Everest.
	EverestHeightM = 8849.0

	// MarathonDistanceKm is the official marathon distance.
	MarathonDistanceKm = 42.195
)

// activityGroups is the closed-world dispatch table from the export's
// activity-type labels to activity groups. Lookups are case-sensitive;
// anything unmapped falls into GroupOther, never an error.
var activityGroups = map[string]string{
	"Run":         GroupRunning,
	"Trail Run":   GroupRunning,
	"Virtual Run": GroupRunning,

	"Ride":               GroupCycling,
	"Gravel Ride":        GroupCycling,
	"Mountain Bike Ride": GroupCycling,
	"E-Bike Ride":        GroupCycling,
	"Virtual Ride":       GroupCycling,

	"Swim":            GroupSwimming,
	"Open Water Swim": GroupSwimming,

	"Walk": GroupWalking,
	"Hike": GroupWalking,

	"Weight Training": GroupStrength,
	"Workout":         GroupStrength,
	"Crossfit":        GroupStrength,
	"Rowing":          GroupStrength,

	"Alpine Ski":      GroupWinterSports,
	"Nordic Ski":      GroupWinterSports,
	"Backcountry Ski": GroupWinterSports,
	"Snowboard":       GroupWinterSports,
	"Snowshoe":        GroupWinterSports,
	"Ice Skate":       GroupWinterSports,

	"Soccer":     GroupTeamSports,
	"Football":   GroupTeamSports,
	"Basketball": GroupTeamSports,
	"Tennis":     GroupTeamSports,
	"Badminton":  GroupTeamSports,
	"Squash":     GroupTeamSports,

	"Alpine Skiing": GroupWinterSports,
	"Water Sport":   GroupOther,
	"Unknown":       GroupOther,
}

// ActivityGroup maps an export activity-type label to its group.
// Unmapped labels map to GroupOther.
func ActivityGroup(activityType string) string {
	if group, ok := activityGroups[activityType]; ok {
		return group
	}
	return GroupOther
}

// ActivityGroups returns all defined group names in display order.
func ActivityGroups() []string {
	return []string{
		GroupRunning,
		GroupCycling,
		GroupSwimming,
		GroupWalking,
		GroupStrength,
		GroupWinterSports,
		GroupTeamSports,
		GroupOther,
	}
}

// GroupColors assigns each activity group an accessible palette color
// (UK Government Analysis Function palette). Presentation-only.
var GroupColors = map[string]string{
	GroupRunning:      "#12436D",
	GroupCycling:      "#28A197",
	GroupSwimming:     "#4C2C92",
	GroupWalking:      "#F46A25",
	GroupStrength:     "#A285D1",
	GroupWinterSports: "#3D3D3D",
	GroupTeamSports:   "#2073BC",
	GroupOther:        "#801650",
}

// metricDistanceTypes lists activity types whose export distances are in
// meters rather than kilometers. Normalized to kilometers during load.
var metricDistanceTypes = map[string]bool{
	"Swim":            true,
	"Open Water Swim": true,
	"Rowing":          true,
}

// DistanceInMeters reports whether the export records the given activity
// type's distance in meters.
func DistanceInMeters(activityType string) bool {
	return metricDistanceTypes[activityType]
}

// RaceBand is a standard race distance with a tolerance window for GPS
// inaccuracy.
type RaceBand struct {
	Name  string
	MinKm float64
	MaxKm float64
}

// RaceBands lists the standard running race distances used for best-time
// extraction, in ascending distance order.
var RaceBands = []RaceBand{
	{Name: "5k", MinKm: 4.8, MaxKm: 5.2},
	{Name: "10k", MinKm: 9.8, MaxKm: 10.5},
	{Name: "half", MinKm: 20.5, MaxKm: 21.5},
	{Name: "marathon", MinKm: 41.5, MaxKm: 43.0},
}
