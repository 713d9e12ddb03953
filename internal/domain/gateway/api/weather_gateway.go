package api

import (
	"context"

	"weather-dashboard/internal/domain/entity"
)

// CurrentLocationName labels readings looked up by coordinates.
const CurrentLocationName = "Your Location"

// WeatherGateway is a source of weather reports
type WeatherGateway interface {
	// FindByCity returns entity.ErrCityNotFound when the name does not resolve
	FindByCity(ctx context.Context, city string) (*entity.WeatherReport, error)

	FindByCoordinates(ctx context.Context, lat, lon float64) (*entity.WeatherReport, error)
}
