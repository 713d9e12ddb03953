package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"weather-dashboard/pkg/redis"
)

// SessionGateway maps opaque session tokens to user ids.
type SessionGateway interface {
	Create(ctx context.Context, userID uint) (string, error)
	// Resolve reports false for unknown or expired tokens
	Resolve(ctx context.Context, token string) (uint, bool, error)
	Delete(ctx context.Context, token string) error
}

// RedisSessionGateway keeps sessions as "session::<token>" keys with a sliding TTL.
type RedisSessionGateway struct {
	client *redis.Client
	ttl    time.Duration
}

var _ SessionGateway = (*RedisSessionGateway)(nil)

func NewRedisSessionGateway(client *redis.Client, ttl time.Duration) *RedisSessionGateway {
	return &RedisSessionGateway{client: client, ttl: ttl}
}

func (gateway *RedisSessionGateway) Create(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	if err := gateway.client.Set(ctx, gateway.key(token), strconv.FormatUint(uint64(userID), 10), gateway.ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

func (gateway *RedisSessionGateway) Resolve(ctx context.Context, token string) (uint, bool, error) {
	if _, err := uuid.Parse(token); err != nil {
		return 0, false, nil
	}

	value, found, err := gateway.client.Get(ctx, gateway.key(token))
	if err != nil || !found {
		return 0, false, err
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt session %s: %w", token, err)
	}

	if err := gateway.client.Expire(ctx, gateway.key(token), gateway.ttl); err != nil {
		return 0, false, err
	}
	return uint(userID), true, nil
}

func (gateway *RedisSessionGateway) Delete(ctx context.Context, token string) error {
	return gateway.client.Delete(ctx, gateway.key(token))
}

func (gateway *RedisSessionGateway) key(token string) string {
	return gateway.client.Key("session", token)
}
