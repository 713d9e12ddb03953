package processor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"weather-dashboard/internal/domain/display"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type recordingWeather struct {
	refreshed []string
	err       error
}

func (r *recordingWeather) FindByCity(context.Context, string, entity.Unit) (*model.WeatherResponse, error) {
	return nil, nil
}

func (r *recordingWeather) FindByCoordinates(context.Context, float64, float64, entity.Unit) (*model.WeatherResponse, error) {
	return nil, nil
}

func (r *recordingWeather) Project(model.DisplayRequest) (*display.View, error) {
	return nil, nil
}

func (r *recordingWeather) RefreshCity(_ context.Context, city string) error {
	r.refreshed = append(r.refreshed, city)
	return r.err
}

func (r *recordingWeather) EnqueueFavoritesRefresh(context.Context, string) (*model.RefreshResponse, error) {
	return nil, nil
}

func TestHandleMessage(t *testing.T) {
	tests := []struct {
		name          string
		body          *string
		refreshErr    error
		wantErr       bool
		wantRefreshed int
	}{
		{"valid", aws.String(`{"city":"Lisbon"}`), nil, false, 1},
		{"nil body", nil, nil, false, 0},
		{"malformed", aws.String(`{"city":`), nil, false, 0},
		{"blank city", aws.String(`{"city":" "}`), nil, false, 0},
		{"unknown city acknowledged", aws.String(`{"city":"Atlantis"}`), fmt.Errorf("wrapped: %w", entity.ErrCityNotFound), false, 1},
		{"provider failure retried", aws.String(`{"city":"Lisbon"}`), errors.New("timeout"), true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := &recordingWeather{err: tt.refreshErr}
			err := NewRefreshProcessor(useCase).HandleMessage(context.Background(), types.Message{MessageId: aws.String("m-1"), Body: tt.body})
			if (err != nil) != tt.wantErr {
				t.Errorf("HandleMessage error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(useCase.refreshed) != tt.wantRefreshed {
				t.Errorf("refreshed = %v", useCase.refreshed)
			}
		})
	}
}
