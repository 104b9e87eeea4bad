package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotelmock/internal/config"
	"hotelmock/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisSearchCache stores serialized responses in Redis with a TTL.
type RedisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient создает новый клиент Redis на основе конфигурации
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	options := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}

	return redis.NewClient(options)
}

func NewRedisSearchCache(client *redis.Client, ttl time.Duration) *RedisSearchCache {
	return &RedisSearchCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisSearchCache) Get(ctx context.Context, key string) (*models.SearchResponse, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}
	val, err := c.client.Get(ctx, cacheKey(key)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get search response from redis: %w", err)
	}

	var resp models.SearchResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search response: %w", err)
	}

	return &resp, nil
}

func (c *RedisSearchCache) Set(ctx context.Context, key string, resp *models.SearchResponse) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal search response: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set search response in redis: %w", err)
	}

	return nil
}

func cacheKey(key string) string {
	return fmt.Sprintf("search:%s", key)
}

// Ping проверяет соединение с Redis
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}
