// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package models

import "time"

// APIResponse is the standardized response wrapper used by every HTTP
// endpoint. Status is "success" or "error"; Error is populated only for
// error responses.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"count": 128, "total_distance_km": 1042.5},
//	  "metadata": {"timestamp": "2026-08-30T12:00:00Z", "cached": true}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response observability fields: server timestamp, elapsed
// computation time, and whether the canonical table came from the loader
// cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is a structured error payload.
//
// Common codes: VALIDATION_ERROR, DATA_SOURCE_ERROR, NOT_FOUND,
// METHOD_NOT_ALLOWED, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status        string     `json:"status"`
	Version       string     `json:"version"`
	SourcePath    string     `json:"source_path"`
	SourceLoaded  bool       `json:"source_loaded"`
	ActivityCount int        `json:"activity_count"`
	DroppedRows   int        `json:"dropped_rows"`
	LastLoadTime  *time.Time `json:"last_load_time,omitempty"`
	UptimeSeconds float64    `json:"uptime_seconds"`
}

// ActivitiesPage is a paginated slice of the canonical table.
type ActivitiesPage struct {
	Activities []Activity `json:"activities"`
	Total      int        `json:"total"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}
