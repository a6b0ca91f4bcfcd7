package cache

import (
	"sync"
	"time"
)

// Clock returns the current time. Injectable for tests.
type Clock func() time.Time

type cacheValue struct {
	value     any
	expiresAt time.Time
}

// Cache is a TTL cache for point-in-time data such as reserve snapshots.
// It is owned by the data-fetching caller, never by the routing engine,
// which stays a pure function of the snapshots it is handed.
type Cache struct {
	mu    sync.RWMutex
	data  map[string]cacheValue
	clock Clock
}

// New creates a cache using the wall clock.
func New() *Cache {
	return NewWithClock(time.Now)
}

// NewWithClock creates a cache with an injected clock.
func NewWithClock(clock Clock) *Cache {
	return &Cache{
		data:  make(map[string]cacheValue),
		clock: clock,
	}
}

// Set stores value under key for the given TTL.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = cacheValue{
		value:     value,
		expiresAt: c.clock().Add(ttl),
	}
}

// Get returns the value for key if present and not expired.
// An expired entry is evicted on read.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	entry, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.clock().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock in case of a concurrent Set.
		if cur, ok := c.data[key]; ok && c.clock().After(cur.expiresAt) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.value, true
}

// Delete removes key from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Len returns the number of entries, including not-yet-evicted expired ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
