// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package stravaimport

import (
	"encoding/csv"
	"io"
	"os"
)

// Export column labels as Strava writes them. Header resolution is by name,
// not position, so column order does not matter.
const (
	colActivityDate = "Activity Date"
	colActivityName = "Activity Name"
	colActivityType = "Activity Type"
	colDescription  = "Activity Description"
	colDistance     = "Distance"
	colMovingTime   = "Moving Time"
	colElapsedTime  = "Elapsed Time"
	colElevation    = "Elevation Gain"
	colAvgSpeed     = "Average Speed"
	colWorkoutType  = "Workout Type"
)

// columnIndex holds the resolved position of each column, -1 when absent.
type columnIndex struct {
	date        int
	name        int
	activityTyp int
	description int
	distance    int
	movingTime  int
	elapsedTime int
	elevation   int
	avgSpeed    int
	workoutType int
}

// resolveColumns maps the header row to column positions and verifies the
// required columns are present. Duration accepts Moving Time with Elapsed
// Time as a fallback, matching what the export actually carries.
func resolveColumns(header []string) (columnIndex, []string) {
	idx := columnIndex{
		date: -1, name: -1, activityTyp: -1, description: -1,
		distance: -1, movingTime: -1, elapsedTime: -1,
		elevation: -1, avgSpeed: -1, workoutType: -1,
	}

	for i, label := range header {
		switch label {
		case colActivityDate:
			idx.date = i
		case colActivityName:
			idx.name = i
		case colActivityType:
			idx.activityTyp = i
		case colDescription:
			idx.description = i
		case colDistance:
			idx.distance = i
		case colMovingTime:
			idx.movingTime = i
		case colElapsedTime:
			idx.elapsedTime = i
		case colElevation:
			idx.elevation = i
		case colAvgSpeed:
			idx.avgSpeed = i
		case colWorkoutType:
			idx.workoutType = i
		}
	}

	var missing []string
	if idx.date < 0 {
		missing = append(missing, colActivityDate)
	}
	if idx.activityTyp < 0 {
		missing = append(missing, colActivityType)
	}
	if idx.distance < 0 {
		missing = append(missing, colDistance)
	}
	if idx.movingTime < 0 && idx.elapsedTime < 0 {
		missing = append(missing, colMovingTime)
	}

	return idx, missing
}

// readExport reads the export file and returns the header plus raw rows.
// The CSV reader is lenient about per-row field counts; short rows are
// handled (and counted) during mapping, not here.
func readExport(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &DataSourceError{Path: path, Reason: "unreadable", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, &DataSourceError{Path: path, Reason: "malformed_csv", Err: io.ErrUnexpectedEOF}
	}
	if err != nil {
		return nil, nil, &DataSourceError{Path: path, Reason: "malformed_csv", Err: err}
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, &DataSourceError{Path: path, Reason: "malformed_csv", Err: err}
	}

	return header, rows, nil
}

// field returns the row value at idx, or empty string when the column is
// absent or the row is too short.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
