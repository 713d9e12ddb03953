package queue

import (
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/sqs"
)

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker WorkerHealthChecker)
	UnregisterWorker(name string)
}

// WorkerHealthChecker is satisfied by *sqs.Worker.
type WorkerHealthChecker interface {
	HealthCheck() sqs.WorkerHealth
}
