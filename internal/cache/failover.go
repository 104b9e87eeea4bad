package cache

import (
	"context"
	"sync/atomic"
	"time"

	"hotelmock/internal/domain"
	"hotelmock/internal/models"

	"github.com/rs/zerolog"
)

// FailoverSearchCache serves from the primary backend while it is
// healthy and degrades to the fallback when it errors, retrying the
// primary after a cooldown.
type FailoverSearchCache struct {
	primary   domain.SearchCache
	fallback  domain.SearchCache
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck time.Time
}

func NewFailoverSearchCache(primary, fallback domain.SearchCache, logger *zerolog.Logger) *FailoverSearchCache {
	return &FailoverSearchCache{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (c *FailoverSearchCache) Get(ctx context.Context, key string) (*models.SearchResponse, error) {
	if !c.isDown.Load() {
		resp, err := c.primary.Get(ctx, key)
		if err == nil {
			return resp, nil
		}
		c.logger.Error().Err(err).Msg("primary search cache failed, falling back to memory")
		c.isDown.Store(true)
		c.lastCheck = time.Now()
	}

	// Retry the primary after a minute of downtime.
	if c.isDown.Load() && time.Since(c.lastCheck) > time.Minute {
		resp, err := c.primary.Get(ctx, key)
		if err == nil {
			c.isDown.Store(false)
			return resp, nil
		}
		c.lastCheck = time.Now()
	}

	return c.fallback.Get(ctx, key)
}

func (c *FailoverSearchCache) Set(ctx context.Context, key string, resp *models.SearchResponse) error {
	if !c.isDown.Load() {
		err := c.primary.Set(ctx, key, resp)
		if err == nil {
			return nil
		}
		c.logger.Error().Err(err).Msg("primary search cache failed, falling back to memory")
		c.isDown.Store(true)
		c.lastCheck = time.Now()
	}

	return c.fallback.Set(ctx, key, resp)
}
