// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

// Package config provides layered configuration for Stridelog using Koanf v2.
//
// Configuration precedence (highest wins): environment variables > config
// file (YAML) > built-in defaults. The package also owns the static domain
// constants the analytics pipeline is parameterized by: the activity-group
// lookup table, the accessible color palette, physical reference constants,
// and race-distance bands. These are injected into the pipeline as immutable
// values; no other package defines grouping or classification rules.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root configuration structure.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Analytics AnalyticsConfig `koanf:"analytics"`
}

// DataConfig configures the activity export source.
type DataConfig struct {
	// Path is the location of the Strava activities CSV export.
	Path string `koanf:"path" validate:"required"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host    string        `koanf:"host" validate:"required"`
	Port    int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`
}

// APIConfig configures API pagination behavior.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size" validate:"min=1"`
	MaxPageSize     int `koanf:"max_page_size" validate:"min=1"`
}

// SecurityConfig configures CORS and rate limiting.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"min=1s"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// AnalyticsConfig configures the filter and aggregation defaults.
type AnalyticsConfig struct {
	// DefaultDaysBack is the recent-activity window applied when a request
	// does not specify one.
	DefaultDaysBack int `koanf:"default_days_back" validate:"min=1"`

	// MinDaysBack and MaxDaysBack bound the days_back filter. Out-of-range
	// values are clamped, never rejected.
	MinDaysBack int `koanf:"min_days_back" validate:"min=1"`
	MaxDaysBack int `koanf:"max_days_back" validate:"min=1"`

	// RollingWindow is the trailing moving-average window for quarterly and
	// annual rollups; RollingWindowMonthly applies to monthly rollups.
	RollingWindow        int `koanf:"rolling_window" validate:"min=1"`
	RollingWindowMonthly int `koanf:"rolling_window_monthly" validate:"min=1"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Path: "data/activities.csv",
		},
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8572,
			Timeout: 30 * time.Second,
		},
		API: APIConfig{
			DefaultPageSize: 50,
			MaxPageSize:     500,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Analytics: AnalyticsConfig{
			DefaultDaysBack:      30,
			MinDaysBack:          1,
			MaxDaysBack:          365,
			RollingWindow:        2,
			RollingWindowMonthly: 3,
		},
	}
}

// Validate checks the configuration for invalid or inconsistent values.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Analytics.MinDaysBack > c.Analytics.MaxDaysBack {
		return fmt.Errorf("invalid configuration: min_days_back %d exceeds max_days_back %d",
			c.Analytics.MinDaysBack, c.Analytics.MaxDaysBack)
	}
	if c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("invalid configuration: default_page_size %d exceeds max_page_size %d",
			c.API.DefaultPageSize, c.API.MaxPageSize)
	}
	return nil
}
