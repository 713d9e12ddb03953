package weather

import (
	"context"

	"weather-dashboard/internal/domain/display"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type UseCase interface {
	// FindByCity serves from the reading cache when possible and projects the report for unit
	FindByCity(ctx context.Context, city string, unit entity.Unit) (*model.WeatherResponse, error)

	// FindByCoordinates returns entity.ErrInvalidCoordinates outside [-90,90] x [-180,180]
	FindByCoordinates(ctx context.Context, lat, lon float64, unit entity.Unit) (*model.WeatherResponse, error)

	// Project renders a caller-supplied reading without touching any source
	Project(request model.DisplayRequest) (*display.View, error)

	// RefreshCity fetches a fresh report and overwrites the cache entry
	RefreshCity(ctx context.Context, city string) error

	// EnqueueFavoritesRefresh enqueues every distinct favorite city using key-set pagination
	EnqueueFavoritesRefresh(ctx context.Context, requestID string) (*model.RefreshResponse, error)
}
