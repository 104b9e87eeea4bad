package cache

import (
	"context"
	"sync"
	"time"

	"hotelmock/internal/models"
)

type memoryEntry struct {
	resp      *models.SearchResponse
	expiresAt time.Time
}

// MemorySearchCache keeps responses in a sync.Map with a per-entry TTL.
type MemorySearchCache struct {
	entries sync.Map
	ttl     time.Duration
}

func NewMemorySearchCache(ttl time.Duration) *MemorySearchCache {
	return &MemorySearchCache{ttl: ttl}
}

func (c *MemorySearchCache) Get(ctx context.Context, key string) (*models.SearchResponse, error) {
	val, ok := c.entries.Load(key)
	if !ok {
		return nil, nil
	}
	entry := val.(*memoryEntry)
	if time.Now().After(entry.expiresAt) {
		c.entries.Delete(key)
		return nil, nil
	}
	return entry.resp, nil
}

func (c *MemorySearchCache) Set(ctx context.Context, key string, resp *models.SearchResponse) error {
	c.entries.Store(key, &memoryEntry{
		resp:      resp,
		expiresAt: time.Now().Add(c.ttl),
	})
	return nil
}
