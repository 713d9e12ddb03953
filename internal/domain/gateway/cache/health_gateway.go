package cache

import (
	"context"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

type RedisHealthGateway struct {
	checker *redis.HealthChecker
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{checker: redis.NewHealthChecker(client)}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	result := gateway.checker.HealthCheck(ctx)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(result.Status),
		Details: result.Details,
	}
}
