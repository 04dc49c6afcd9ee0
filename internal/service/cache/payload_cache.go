package cache

import (
	"sync"
	"time"

	"StockDash/internal/domain/models"
)

type entry struct {
	payload  models.ProviderPayload
	storedAt time.Time
}

// PayloadCache stores raw provider responses with the time they were stored.
// Freshness is a read-time decision made by the caller against its own TTL;
// the cache never purges. A stale entry keeps occupying its slot until the
// next successful fetch for the same key replaces it.
type PayloadCache struct {
	mu sync.RWMutex
	m  map[string]entry
}

func NewPayloadCache() *PayloadCache {
	return &PayloadCache{m: make(map[string]entry)}
}

// Get returns the payload and its stored-at time for key. Callers must treat
// an entry older than their TTL exactly like a miss.
func (c *PayloadCache) Get(key string) (models.ProviderPayload, time.Time, bool) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok {
		return nil, time.Time{}, false
	}
	return e.payload, e.storedAt, true
}

// Set stores the payload for key, replacing any previous entry.
func (c *PayloadCache) Set(key string, p models.ProviderPayload) {
	c.mu.Lock()
	c.m[key] = entry{payload: p, storedAt: time.Now()}
	c.mu.Unlock()
}

// Len returns the number of entries, fresh or stale.
func (c *PayloadCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
