package loader

import (
	"sync"
	"time"
)

// snapshotCache holds remote snapshots for a bounded window, keyed by the
// dataset repo. Invalidation is purely time-based. The clock is a field so
// tests can drive expiry deterministically.
type snapshotCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	snap    *Snapshot
	expires time.Time
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// get returns the cached snapshot for key, if present and unexpired.
func (c *snapshotCache) get(key string) (*Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.snap, true
}

// put stores a snapshot under key until the TTL elapses.
func (c *snapshotCache) put(key string, snap *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		snap:    snap,
		expires: c.now().Add(c.ttl),
	}
}
