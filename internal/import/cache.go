// Stridelog - Strava Activity Export Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stridelog

package stravaimport

import (
	"os"
	"sync"
	"time"

	"github.com/tomtom215/stridelog/internal/logging"
	"github.com/tomtom215/stridelog/internal/metrics"
	"github.com/tomtom215/stridelog/internal/models"
)

// CachedLoader memoizes Load results keyed by file identity (path, size,
// modification time). Repeated analysis passes in one session reuse the
// canonical table; the entry is invalidated and rebuilt when the source
// file changes. Safe for concurrent use.
type CachedLoader struct {
	loader *Loader

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	size    int64
	modTime time.Time
	table   *models.ActivityTable
	stats   *LoadStats
}

// NewCachedLoader creates a memoizing wrapper around a fresh Loader.
func NewCachedLoader() *CachedLoader {
	return &CachedLoader{
		loader:  NewLoader(),
		entries: make(map[string]cacheEntry),
	}
}

// Load returns the canonical table for path, serving it from cache when
// the file identity is unchanged. The returned LoadStats has FromCache set
// on a hit.
func (c *CachedLoader) Load(path string) (*models.ActivityTable, *LoadStats, error) {
	info, err := os.Stat(path)
	if err != nil {
		metrics.LoadErrors.Inc()
		return nil, nil, &DataSourceError{Path: path, Reason: "unreadable", Err: err}
	}

	c.mu.Lock()
	entry, ok := c.entries[path]
	c.mu.Unlock()

	if ok && entry.size == info.Size() && entry.modTime.Equal(info.ModTime()) {
		metrics.CacheHits.Inc()
		stats := entry.stats.Clone()
		stats.FromCache = true
		return entry.table, stats, nil
	}

	metrics.CacheMisses.Inc()
	if ok {
		logging.Info().Str("path", path).Msg("Source file changed, rebuilding canonical table")
	}

	table, stats, err := c.loader.Load(path)
	if err != nil {
		return nil, nil, err
	}

	c.mu.Lock()
	c.entries[path] = cacheEntry{
		size:    info.Size(),
		modTime: info.ModTime(),
		table:   table,
		stats:   stats,
	}
	c.mu.Unlock()

	return table, stats.Clone(), nil
}

// Invalidate removes the cached entry for path, forcing the next Load to
// re-parse the export.
func (c *CachedLoader) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}
