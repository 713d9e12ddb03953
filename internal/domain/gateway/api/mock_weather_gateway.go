package api

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"weather-dashboard/internal/domain/entity"
)

const (
	mockBaseLat = 40.7128
	mockBaseLon = -74.0060
)

// MockWeatherGateway generates random plausible reports. It stands in for a real provider.
type MockWeatherGateway struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

var _ WeatherGateway = (*MockWeatherGateway)(nil)

// NewMockWeatherGateway seeds the generator so tests can reproduce a sequence. A nil clock uses time.Now.
func NewMockWeatherGateway(seed uint64, now func() time.Time) *MockWeatherGateway {
	if now == nil {
		now = time.Now
	}
	return &MockWeatherGateway{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: now,
	}
}

func (gateway *MockWeatherGateway) FindByCity(ctx context.Context, city string) (*entity.WeatherReport, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, entity.ErrCityNotFound
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return gateway.generate(city, nil), nil
}

func (gateway *MockWeatherGateway) FindByCoordinates(ctx context.Context, lat, lon float64) (*entity.WeatherReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return gateway.generate(CurrentLocationName, &entity.Coordinates{Lat: lat, Lon: lon}), nil
}

func (gateway *MockWeatherGateway) generate(city string, coordinates *entity.Coordinates) *entity.WeatherReport {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	now := gateway.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	reading := entity.WeatherReading{
		City:               city,
		TemperatureCelsius: float64(gateway.between(5, 35)),
		Condition:          entity.Conditions[gateway.rng.IntN(len(entity.Conditions))],
		HumidityPct:        float64(gateway.between(40, 80)),
		WindSpeedKmh:       float64(gateway.between(5, 35)),
		WindDirectionDeg:   float64(gateway.rng.IntN(360)),
		SunriseEpochSec:    day.Add(6 * time.Hour).Unix(),
		SunsetEpochSec:     day.Add(18 * time.Hour).Unix(),
	}

	if coordinates != nil {
		reading.Coordinates = *coordinates
	} else {
		reading.Coordinates = entity.Coordinates{
			Lat: mockBaseLat + gateway.rng.Float64()*20 - 10,
			Lon: mockBaseLon + gateway.rng.Float64()*20 - 10,
		}
	}

	forecast := make([]entity.ForecastDay, 0, 5)
	for i := 1; i <= 5; i++ {
		forecast = append(forecast, entity.ForecastDay{
			Date:      day.AddDate(0, 0, i),
			Condition: reading.Condition,
			HighC:     float64(gateway.between(20, 35)),
			LowC:      float64(gateway.between(5, 15)),
		})
	}

	return &entity.WeatherReport{Reading: reading, Forecast: forecast}
}

// between returns an int in [lo, hi).
func (gateway *MockWeatherGateway) between(lo, hi int) int {
	return lo + gateway.rng.IntN(hi-lo)
}
