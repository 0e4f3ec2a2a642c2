// Package viewcache holds short-lived rendered list views and the
// invalidation signal mutations emit after a successful write.
package viewcache

import (
	"sync"
	"time"
)

// InvoiceListPath is the cached view every invoice mutation invalidates.
const InvoiceListPath = "/home/invoices"

type entry struct {
	payload   []byte
	expiresAt time.Time
}

// Cache is an in-process TTL cache keyed by view path.
type Cache struct {
	mu            sync.Mutex
	ttl           time.Duration
	entries       map[string]entry
	invalidations int64
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

func (c *Cache) Get(path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[path]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, path)
		return nil, false
	}
	return e.payload, true
}

func (c *Cache) Set(path string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = entry{
		payload:   payload,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate marks the cached view stale so the next request recomputes it.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, path)
	c.invalidations++
}

// Invalidations reports how many times Invalidate ran.
func (c *Cache) Invalidations() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidations
}
