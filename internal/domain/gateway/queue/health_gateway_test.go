package queue

import (
	"testing"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/sqs"
)

type stubWorker struct {
	status sqs.HealthStatus
}

func (s stubWorker) HealthCheck() sqs.WorkerHealth {
	return sqs.WorkerHealth{Status: s.status, Details: map[string]string{"queue": "weather-refresh"}}
}

func TestQueueHealthGateway(t *testing.T) {
	gateway := NewQueueHealthGateway()
	if got := gateway.Health(); got.Status != model.StatusUnknown {
		t.Errorf("no workers status = %s", got.Status)
	}

	gateway.RegisterWorker("refresh", stubWorker{status: sqs.StatusUp})
	health := gateway.Health()
	if health.Status != model.StatusUp || health.Details["refresh_queue"] != "weather-refresh" || health.Details["workers_up"] != "1" {
		t.Errorf("healthy gateway = %+v", health)
	}

	gateway.RegisterWorker("other", stubWorker{status: sqs.StatusDown})
	if got := gateway.Health(); got.Status != model.StatusDown || got.Details["workers_down"] != "1" {
		t.Errorf("degraded gateway = %+v", got)
	}

	gateway.UnregisterWorker("other")
	if got := gateway.Health(); got.Status != model.StatusUp {
		t.Errorf("after unregister status = %s", got.Status)
	}
}
