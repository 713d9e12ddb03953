package cache

import (
	"context"
	"fmt"
	"strings"

	"weather-dashboard/internal/domain/entity"
)

// ReadingCache stores weather reports under a location key.
type ReadingCache interface {
	Get(ctx context.Context, key string) (*entity.WeatherReport, bool, error)
	Set(ctx context.Context, key string, report *entity.WeatherReport) error
}

// CityKey normalizes a city name so "London" and " london " share an entry.
func CityKey(city string) string {
	return "city:" + strings.ToLower(strings.TrimSpace(city))
}

// CoordinatesKey rounds to two decimals (about 1km) so nearby lookups share an entry.
func CoordinatesKey(lat, lon float64) string {
	return fmt.Sprintf("coords:%.2f,%.2f", lat, lon)
}
