package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"
)

const refreshLockName = "favorites_refresh_scheduler"

// Locker is satisfied by *redis.Lock.
type Locker interface {
	TryLock(ctx context.Context) error
	Unlock(ctx context.Context) error
}

// RefreshScheduler enqueues favorite city refreshes on a cron expression. Every tick takes
// a short-lived lock so only one replica enqueues.
type RefreshScheduler struct {
	cron           *cron.Cron
	useCase        weather.UseCase
	lock           Locker
	cronExpression string
	timeout        time.Duration
}

// NewRefreshScheduler accepts six-field cron expressions (with seconds).
func NewRefreshScheduler(useCase weather.UseCase, redisClient *redis.Client, cronExpression string, lockTTL time.Duration) *RefreshScheduler {
	if lockTTL <= 0 {
		lockTTL = 5 * time.Minute
	}
	return newRefreshScheduler(useCase, redis.NewLock(redisClient, refreshLockName, lockTTL), cronExpression, lockTTL)
}

func newRefreshScheduler(useCase weather.UseCase, lock Locker, cronExpression string, timeout time.Duration) *RefreshScheduler {
	return &RefreshScheduler{
		cron:           cron.New(cron.WithSeconds()),
		useCase:        useCase,
		lock:           lock,
		cronExpression: cronExpression,
		timeout:        timeout,
	}
}

// Start registers the job and starts the cron runner.
func (s *RefreshScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask); err != nil {
		return fmt.Errorf("invalid refresh cron expression %q: %w", s.cronExpression, err)
	}
	s.cron.Start()
	log.Info("Favorites refresh scheduler started", zap.String("cron", s.cronExpression))
	return nil
}

// ExecuteScheduledTask runs one refresh if this replica wins the lock.
func (s *RefreshScheduler) ExecuteScheduledTask() {
	requestID := uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.lock.TryLock(ctx); err != nil {
		if errors.Is(err, redis.ErrLockNotAcquired) {
			log.Info(msg.GetMessage("weather.refresh.cron.lock-busy"), zap.String("request_id", requestID))
			return
		}
		log.Error(msg.GetMessage("weather.refresh.cron.failed"), zap.String("request_id", requestID), zap.Error(err))
		return
	}
	defer func() {
		if err := s.lock.Unlock(context.Background()); err != nil {
			log.Warn("Failed to release refresh lock", zap.String("request_id", requestID), zap.Error(err))
		}
	}()

	log.Info(msg.GetMessage("weather.refresh.cron.start"), zap.String("request_id", requestID))
	response, err := s.useCase.EnqueueFavoritesRefresh(ctx, requestID)
	if err != nil {
		log.Error(msg.GetMessage("weather.refresh.cron.failed"), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("weather.refresh.cron.end"),
		zap.String("request_id", requestID),
		zap.Int("enqueued", response.Enqueued),
		zap.Int("failed", response.Failed))
}

// Stop waits for a running job to finish.
func (s *RefreshScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
