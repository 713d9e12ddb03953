package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores JSON documents under CacheName::key with a fixed TTL.
type Cache struct {
	client    *Client
	cacheName string
	ttl       time.Duration
}

// NewCache creates a new cache instance
func NewCache(client *Client, cacheName string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{client: client, cacheName: cacheName, ttl: ttl}
}

func (c *Cache) buildCacheKey(key string) string {
	return c.client.Key(c.cacheName, key)
}

// Get decodes the cached value into dest. found is false when the key is absent or expired.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, found, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to deserialize value: %w", err)
	}
	return true, nil
}

// Set stores a value in cache with serialization
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildCacheKey(key), data, c.ttl)
}
