package cache

import (
	"sleuth/internal/utils"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// DefaultWindow is the number of recent lookups the approximate hit rate is computed over.
const DefaultWindow = 256

// Stats is a point-in-time view of the cache.
type Stats struct {
	// Size: number of cached entries.
	Size int `json:"size"`
	// Hits: lookups answered from the cache since creation.
	Hits int64 `json:"hits"`
	// Misses: lookups that had to compute since creation.
	Misses int64 `json:"misses"`
	// ApproximateHitRate: share of hits among the most recent lookups, in [0, 1].
	ApproximateHitRate float64 `json:"approximateHitRate"`
}

// Cache memoizes computed values by key for the lifetime of its owner.
// Entries are only dropped by Clear.
//
// Concurrent misses on the same key are collapsed into a single computation.
// Safe for concurrent use.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	flight  singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
	window *utils.RingBuffer[bool] // true for a hit
}

// Get returns the cached value for key. Counts as a lookup.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	value, found := c.entries[key]
	c.mu.RUnlock()

	c.record(found)
	return value, found
}

// GetOrCompute returns the cached value for key, computing and storing it with compute on a miss.
// The boolean result reports whether the value came from the cache.
func (c *Cache[V]) GetOrCompute(key string, compute func() V) (V, bool) {
	if value, found := c.Get(key); found {
		return value, true
	}

	result, _, _ := c.flight.Do(key, func() (any, error) {
		c.mu.RLock()
		value, found := c.entries[key]
		c.mu.RUnlock()
		if found {
			return value, nil
		}

		value = compute()
		c.mu.Lock()
		c.entries[key] = value
		c.mu.Unlock()
		return value, nil
	})

	value, _ := result.(V)
	return value, false
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every entry. Lookup counters are kept.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]V)
	c.mu.Unlock()
}

// Stats returns current cache statistics.
func (c *Cache[V]) Stats() Stats {
	recent := c.window.ToSlice()
	var rate float64
	if len(recent) > 0 {
		hits := 0
		for _, hit := range recent {
			if hit {
				hits++
			}
		}
		rate = float64(hits) / float64(len(recent))
	}

	return Stats{
		Size:               c.Len(),
		Hits:               c.hits.Load(),
		Misses:             c.misses.Load(),
		ApproximateHitRate: rate,
	}
}

func (c *Cache[V]) record(hit bool) {
	if hit {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	c.window.Push(hit)
}

// New creates an empty cache whose hit rate covers the last window lookups.
// A non-positive window falls back to DefaultWindow.
func New[V any](window int) *Cache[V] {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Cache[V]{
		entries: make(map[string]V),
		window:  utils.NewRingBuffer[bool](window),
	}
}
