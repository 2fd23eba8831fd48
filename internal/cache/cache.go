// Package cache provides an in-memory TTL cache for decoded backend
// responses, keyed by request identity. Current-season keys get a short TTL
// because scores and stat lines still move; historical keys are effectively
// static and cache for much longer.
package cache

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type entry struct {
	value     any
	etag      string
	expiresAt time.Time
}

// Cache is a thread-safe in-memory TTL cache.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	enabled bool
	now     func() time.Time
}

// New creates a new cache. Pass enabled=false to create a no-op cache.
func New(enabled bool) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		enabled: enabled,
		now:     time.Now,
	}
	if enabled {
		go c.evictLoop()
	}
	return c
}

// Get retrieves a cached value. Returns the value, its etag, and whether a
// live entry was found.
func (c *Cache) Get(key string) (value any, etag string, ok bool) {
	if !c.enabled {
		return nil, "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, exists := c.entries[key]
	if !exists || c.now().After(e.expiresAt) {
		return nil, "", false
	}
	return e.value, e.etag, true
}

// Set stores a value with a TTL and returns the computed etag. The etag
// hashes the marshaled value so it changes whenever the content does.
func (c *Cache) Set(key string, value any, ttl time.Duration) string {
	etag := etagFor(value)
	if !c.enabled {
		return etag
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:     value,
		etag:      etag,
		expiresAt: c.now().Add(ttl),
	}
	return etag
}

// Invalidate drops a single key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Stats returns cache statistics.
func (c *Cache) Stats() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	active := 0
	now := c.now()
	for _, e := range c.entries {
		if now.Before(e.expiresAt) {
			active++
		}
	}
	return map[string]any{
		"enabled":      c.enabled,
		"total_keys":   len(c.entries),
		"active_keys":  active,
		"expired_keys": len(c.entries) - active,
	}
}

// evictLoop periodically removes expired entries.
func (c *Cache) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		c.evict()
	}
}

func (c *Cache) evict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// TTLs selects an expiry per season. Current-season data still moves; past
// seasons are effectively static.
type TTLs struct {
	Current    time.Duration
	Historical time.Duration
}

// For returns the TTL appropriate for data from the given season, judged
// against the season in progress.
func (t TTLs) For(season, currentSeason int) time.Duration {
	if season >= currentSeason {
		return t.Current
	}
	return t.Historical
}

// ComputeETag generates a weak ETag using MD5.
func ComputeETag(data []byte) string {
	hash := md5.Sum(data)
	return fmt.Sprintf(`W/"%x"`, hash[:8])
}

func etagFor(value any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		encoded = []byte(fmt.Sprintf("%v", value))
	}
	return ComputeETag(encoded)
}
