// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package stravaimport

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tomtom215/stridelog/internal/config"
	"github.com/tomtom215/stridelog/internal/models"
)

// timestampLayouts are tried in order when parsing the activity date.
// The first is the layout Strava's bulk export writes.
var timestampLayouts = []string{
	"Jan 2, 2006, 3:04:05 PM",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// maxPlausibleSpeedKmh bounds the derived average speed. Values above this
// are GPS or unit errors and are treated as unknown.
const maxPlausibleSpeedKmh = 100.0

// Mapper converts raw export rows to canonical Activity records.
type Mapper struct {
	races *raceDetector
}

// NewMapper creates a new row mapper.
func NewMapper() *Mapper {
	return &Mapper{races: newRaceDetector()}
}

// ToActivity converts one raw row. It returns the record and true on
// success, or the drop reason and false when the row violates a
// canonical-table invariant.
func (m *Mapper) ToActivity(row []string, idx columnIndex) (models.Activity, DropReason, bool) {
	ts, err := parseTimestamp(field(row, idx.date))
	if err != nil {
		return models.Activity{}, DropBadTimestamp, false
	}

	distance, distOK := parseFloat(field(row, idx.distance))
	if distOK && distance < 0 {
		return models.Activity{}, DropNegativeDist, false
	}
	if !distOK {
		// Missing distance is treated as 0 for aggregation; the record
		// itself is retained.
		distance = 0
	}

	duration, durOK := parseFloat(field(row, idx.movingTime))
	if !durOK {
		duration, durOK = parseFloat(field(row, idx.elapsedTime))
	}
	if !durOK || duration <= 0 {
		return models.Activity{}, DropBadDuration, false
	}

	activityType := field(row, idx.activityTyp)
	if activityType == "" {
		activityType = "Unknown"
	}

	// Swimming and rowing distances arrive in meters.
	if config.DistanceInMeters(activityType) {
		distance /= 1000
	}

	elevation, elevOK := parseFloat(field(row, idx.elevation))
	if !elevOK || elevation < 0 {
		elevation = 0
	}

	name := field(row, idx.name)
	description := field(row, idx.description)

	act := models.Activity{
		ID:          deterministicID(ts, activityType, distance, name),
		Time:        ts.UTC(),
		Name:        name,
		Description: description,
		Type:        activityType,
		Group:       config.ActivityGroup(activityType),
		DistanceKm:  distance,
		DurationS:   duration,
		ElevationM:  elevation,
		AvgSpeedKmh: deriveSpeed(field(row, idx.avgSpeed), distance, duration),
		IsRace:      m.races.IsRace(name, description, field(row, idx.workoutType)),
	}

	return act, "", true
}

// parseTimestamp tries the known export layouts in order.
func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}

// parseFloat parses a numeric export field, tolerating the thousands
// separators the export sometimes writes into swimming distances.
func parseFloat(value string) (float64, bool) {
	value = strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// deriveSpeed computes the average moving speed in km/h. The value derived
// from distance and duration is preferred over the export's own column,
// which is unreliable. Implausible results (non-positive, above
// maxPlausibleSpeedKmh) are reported as 0 (unknown).
func deriveSpeed(raw string, distanceKm, durationS float64) float64 {
	if durationS > 0 && distanceKm > 0 {
		speed := distanceKm / (durationS / 3600)
		if speed > 0 && speed <= maxPlausibleSpeedKmh {
			return speed
		}
		return 0
	}
	if speed, ok := parseFloat(raw); ok && speed > 0 && speed <= maxPlausibleSpeedKmh {
		return speed
	}
	return 0
}

// deterministicID derives a stable UUID from the record's identity so that
// re-loading the same export produces the same IDs.
func deterministicID(ts time.Time, activityType string, distanceKm float64, name string) uuid.UUID {
	input := fmt.Sprintf("stridelog:%d:%s:%.3f:%s", ts.Unix(), activityType, distanceKm, name)
	hash := sha256.Sum256([]byte(input))

	id, err := uuid.FromBytes(hash[:16])
	if err != nil {
		// 16 bytes of input cannot fail; fall back to a random ID anyway.
		return uuid.New()
	}

	// Set version 5 and variant bits.
	id[6] = (id[6] & 0x0f) | 0x50
	id[8] = (id[8] & 0x3f) | 0x80

	return id
}
