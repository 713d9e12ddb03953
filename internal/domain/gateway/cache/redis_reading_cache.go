package cache

import (
	"context"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/pkg/redis"
)

const readingCacheName = "reading"

type RedisReadingCache struct {
	cache *redis.Cache
}

var _ ReadingCache = (*RedisReadingCache)(nil)

func NewRedisReadingCache(client *redis.Client, ttl time.Duration) *RedisReadingCache {
	return &RedisReadingCache{cache: redis.NewCache(client, readingCacheName, ttl)}
}

func (gateway *RedisReadingCache) Get(ctx context.Context, key string) (*entity.WeatherReport, bool, error) {
	var report entity.WeatherReport
	found, err := gateway.cache.Get(ctx, key, &report)
	if err != nil || !found {
		return nil, false, err
	}
	return &report, true, nil
}

func (gateway *RedisReadingCache) Set(ctx context.Context, key string, report *entity.WeatherReport) error {
	return gateway.cache.Set(ctx, key, report)
}
