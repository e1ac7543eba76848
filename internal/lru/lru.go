// Package lru provides a small soft-limit LRU map used to memoise lookups.
package lru

import "sync"

// Cache is a thread-safe map that evicts its least recently used quarter
// once it grows past a soft limit.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	tick    uint64
	hits    uint64
	misses  uint64
}

type entry[V any] struct {
	value V
	atime uint64
}

// New creates a cache holding roughly limit entries.
// A limit of 0 or less means unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		limit:   limit,
	}
}

// Get returns the cached value for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// Put stores value under key, evicting old entries past the limit.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the hit and miss counters.
func (c *Cache[K, V]) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Clear drops every entry and resets the counters.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.tick, c.hits, c.misses = 0, 0, 0
}

// evict shrinks the map to three quarters of the limit, oldest first.
// Caller must hold c.mu.
func (c *Cache[K, V]) evict() {
	target := max(c.limit*3/4, 1)
	for len(c.entries) > target {
		var (
			oldestKey K
			oldest    uint64
			found     bool
		)
		for k, e := range c.entries {
			if !found || e.atime < oldest {
				oldestKey, oldest, found = k, e.atime, true
			}
		}
		delete(c.entries, oldestKey)
	}
}
