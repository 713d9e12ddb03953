package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// RefreshProcessor consumes favorite city refresh messages.
type RefreshProcessor struct {
	weatherUseCase weather.UseCase
}

func NewRefreshProcessor(weatherUseCase weather.UseCase) *RefreshProcessor {
	return &RefreshProcessor{weatherUseCase: weatherUseCase}
}

// HandleMessage implements sqs.Handler. Malformed bodies and cities the provider no longer
// knows are acknowledged so they are not redelivered; other failures are returned and the
// message stays on the queue.
func (p *RefreshProcessor) HandleMessage(ctx context.Context, message types.Message) error {
	if message.Body == nil {
		log.Warn(msg.GetMessage("weather.refresh.invalid-message", "<nil>"))
		return nil
	}

	var refresh model.RefreshMessage
	if err := json.Unmarshal([]byte(*message.Body), &refresh); err != nil || strings.TrimSpace(refresh.City) == "" {
		log.Warn(msg.GetMessage("weather.refresh.invalid-message", *message.Body), zap.Error(err))
		return nil
	}

	err := p.weatherUseCase.RefreshCity(ctx, refresh.City)
	if errors.Is(err, entity.ErrCityNotFound) {
		log.Warn("Favorite city no longer resolves, dropping refresh", zap.String("city", refresh.City))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to refresh %s: %w", refresh.City, err)
	}
	return nil
}
