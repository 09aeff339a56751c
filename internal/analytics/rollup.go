// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/stridelog/internal/models"
)

// Granularity selects the calendar bucket size of a rollup.
type Granularity string

const (
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
	GranularityAllTime Granularity = "alltime"
)

// ParseGranularity validates a granularity string from the API.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityMonth, GranularityQuarter, GranularityYear, GranularityAllTime:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// bucketStart truncates a timestamp to its bucket's start instant.
func bucketStart(ts time.Time, g Granularity) time.Time {
	switch g {
	case GranularityMonth:
		return time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
	case GranularityQuarter:
		quarterMonth := time.Month((int(ts.Month())-1)/3*3 + 1)
		return time.Date(ts.Year(), quarterMonth, 1, 0, 0, 0, 0, time.UTC)
	case GranularityYear:
		return time.Date(ts.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Time{}
	}
}

// bucketLabel renders a bucket start as its display period.
func bucketLabel(start time.Time, g Granularity) string {
	switch g {
	case GranularityMonth:
		return start.Format("2006-01")
	case GranularityQuarter:
		return fmt.Sprintf("%d-Q%d", start.Year(), (int(start.Month())-1)/3+1)
	case GranularityYear:
		return start.Format("2006")
	default:
		return "All Time"
	}
}

// nextBucket advances a bucket start by one bucket.
func nextBucket(start time.Time, g Granularity) time.Time {
	switch g {
	case GranularityMonth:
		return start.AddDate(0, 1, 0)
	case GranularityQuarter:
		return start.AddDate(0, 3, 0)
	default:
		return start.AddDate(1, 0, 0)
	}
}

// Rollup aggregates the table into calendar buckets at the given
// granularity, ascending by bucket start, with a running cumulative
// distance. Buckets with no activity are absent; use FillMissingBuckets
// when a dense series is needed. An empty table yields no buckets, even
// at the all-time granularity.
func Rollup(t *models.ActivityTable, g Granularity) []models.RollupBucket {
	if t.Len() == 0 {
		return []models.RollupBucket{}
	}

	if g == GranularityAllTime {
		bucket := models.RollupBucket{Period: bucketLabel(time.Time{}, g)}
		for _, a := range t.Rows() {
			bucket.DistanceKm += a.DistanceKm
			bucket.DurationS += a.DurationS
			bucket.ElevationM += a.ElevationM
			bucket.Count++
		}
		bucket.CumulativeKm = bucket.DistanceKm
		return []models.RollupBucket{bucket}
	}

	byStart := make(map[time.Time]*models.RollupBucket)
	for _, a := range t.Rows() {
		start := bucketStart(a.Time, g)
		bucket, ok := byStart[start]
		if !ok {
			bucket = &models.RollupBucket{Period: bucketLabel(start, g), Start: start}
			byStart[start] = bucket
		}
		bucket.DistanceKm += a.DistanceKm
		bucket.DurationS += a.DurationS
		bucket.ElevationM += a.ElevationM
		bucket.Count++
	}

	buckets := make([]models.RollupBucket, 0, len(byStart))
	for _, b := range byStart {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Start.Before(buckets[j].Start)
	})

	cumulative := 0.0
	for i := range buckets {
		cumulative += buckets[i].DistanceKm
		buckets[i].CumulativeKm = cumulative
	}
	return buckets
}

// FillMissingBuckets densifies a sparse rollup by inserting zero-valued
// buckets for every calendar period between the first and last bucket.
// Cumulative distance carries forward through the gaps. All-time rollups
// and series of fewer than two buckets are returned unchanged.
func FillMissingBuckets(buckets []models.RollupBucket, g Granularity) []models.RollupBucket {
	if g == GranularityAllTime || len(buckets) < 2 {
		return buckets
	}

	filled := make([]models.RollupBucket, 0, len(buckets))
	filled = append(filled, buckets[0])

	for i := 1; i < len(buckets); i++ {
		prev := filled[len(filled)-1]
		for start := nextBucket(prev.Start, g); start.Before(buckets[i].Start); start = nextBucket(start, g) {
			filled = append(filled, models.RollupBucket{
				Period:       bucketLabel(start, g),
				Start:        start,
				CumulativeKm: prev.CumulativeKm,
			})
			prev = filled[len(filled)-1]
		}
		filled = append(filled, buckets[i])
	}
	return filled
}

// RollingAverage computes the trailing moving average of per-bucket
// distance over the given window. The first window-1 points average over
// the shorter available prefix rather than being omitted, so the trend
// series has the same length as the rollup.
func RollingAverage(buckets []models.RollupBucket, window int) []models.TrendPoint {
	if window < 1 {
		window = 1
	}

	points := make([]models.TrendPoint, len(buckets))
	sum := 0.0
	for i, b := range buckets {
		sum += b.DistanceKm
		span := window
		if i+1 < window {
			span = i + 1
		} else if i >= window {
			sum -= buckets[i-window].DistanceKm
		}
		points[i] = models.TrendPoint{
			RollupBucket: b,
			RollingAvgKm: sum / float64(span),
		}
	}
	return points
}

// Composition breaks each calendar bucket down by activity group,
// producing the rows behind stacked-series charts. Rows are ordered by
// bucket start, then by the configured group display order. Only
// (bucket, group) pairs with activity appear.
func Composition(t *models.ActivityTable, g Granularity, groupOrder []string) []models.CompositionRow {
	type cellKey struct {
		start time.Time
		group string
	}

	cells := make(map[cellKey]*models.CompositionRow)
	starts := make(map[time.Time]bool)
	for _, a := range t.Rows() {
		start := bucketStart(a.Time, g)
		starts[start] = true
		key := cellKey{start: start, group: a.Group}
		row, ok := cells[key]
		if !ok {
			row = &models.CompositionRow{Period: bucketLabel(start, g), Group: a.Group}
			cells[key] = row
		}
		row.Count++
		row.DistanceKm += a.DistanceKm
	}

	ordered := make([]time.Time, 0, len(starts))
	for start := range starts {
		ordered = append(ordered, start)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	rows := make([]models.CompositionRow, 0, len(cells))
	for _, start := range ordered {
		for _, group := range groupOrder {
			if row, ok := cells[cellKey{start: start, group: group}]; ok {
				rows = append(rows, *row)
			}
		}
	}
	return rows
}

// YearOverYear produces one monthly distance series per calendar year,
// ascending by year, for overlay comparison. Months with no activity are
// absent from their year's series.
func YearOverYear(t *models.ActivityTable) []models.YearSeries {
	type monthKey struct {
		year  int
		month time.Month
	}

	byMonth := make(map[monthKey]*models.MonthValue)
	years := make(map[int]bool)
	for _, a := range t.Rows() {
		key := monthKey{year: a.Time.Year(), month: a.Time.Month()}
		years[key.year] = true
		mv, ok := byMonth[key]
		if !ok {
			mv = &models.MonthValue{Month: key.month}
			byMonth[key] = mv
		}
		mv.DistanceKm += a.DistanceKm
		mv.Count++
	}

	ordered := make([]int, 0, len(years))
	for year := range years {
		ordered = append(ordered, year)
	}
	sort.Ints(ordered)

	series := make([]models.YearSeries, 0, len(ordered))
	for _, year := range ordered {
		ys := models.YearSeries{Year: year}
		for month := time.January; month <= time.December; month++ {
			if mv, ok := byMonth[monthKey{year: year, month: month}]; ok {
				ys.Months = append(ys.Months, *mv)
			}
		}
		series = append(series, ys)
	}
	return series
}
