package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is a process-local TTL cache.
type MemoryCache struct {
	ttl   time.Duration
	clock clockwork.Clock

	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemoryCache creates a MemoryCache. In production pass
// clockwork.NewRealClock(); in tests a fake clock.
func NewMemoryCache(ttl time.Duration, clock clockwork.Clock) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryCache{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]entry),
	}
}

func (c *MemoryCache) Get(_ context.Context, key Key) ([]byte, bool, error) {
	k := key.String()

	c.mu.RLock()
	e, ok := c.entries[k]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if !c.clock.Now().Before(e.expiresAt) {
		c.mu.Lock()
		if cur, ok := c.entries[k]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.entries, k)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set overwrites any existing entry; the last writer wins.
func (c *MemoryCache) Set(_ context.Context, key Key, value []byte) error {
	c.mu.Lock()
	c.entries[key.String()] = entry{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
