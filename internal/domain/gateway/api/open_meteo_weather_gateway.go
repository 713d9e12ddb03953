package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
)

const (
	forecastDays  = 5
	currentFields = "temperature_2m,relative_humidity_2m,wind_speed_10m,wind_direction_10m,weather_code"
	dailyFields   = "weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset"
)

// OpenMeteoWeatherGateway resolves names with the geocoding API and reads the forecast API.
type OpenMeteoWeatherGateway struct {
	geocoding *http.Client
	forecast  *http.Client
}

var _ WeatherGateway = (*OpenMeteoWeatherGateway)(nil)

// NewOpenMeteoWeatherGateway shares clientOptions (limiter, backoff, logger) between both hosts.
func NewOpenMeteoWeatherGateway(geocodingURL, forecastURL string, clientOptions http.ClientOptions) *OpenMeteoWeatherGateway {
	return &OpenMeteoWeatherGateway{
		geocoding: http.NewHttpClient(geocodingURL, clientOptions),
		forecast:  http.NewHttpClient(forecastURL, clientOptions),
	}
}

func (gateway *OpenMeteoWeatherGateway) FindByCity(ctx context.Context, city string) (*entity.WeatherReport, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, entity.ErrCityNotFound
	}

	successResp, errResp, _, err := gateway.geocoding.Request().
		WithMethod(http.GET).
		WithPath("/v1/search").
		WithQueryParams(map[string]string{"name": city, "count": "1", "format": "json"}).
		WithSuccessResp(&external.GeocodingResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute(ctx)
	if err != nil {
		return nil, apiError("geocoding", errResp, err)
	}

	geocoding := successResp.(*external.GeocodingResponse)
	if len(geocoding.Results) == 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrCityNotFound, city)
	}

	place := geocoding.Results[0]
	return gateway.fetch(ctx, place.Name, place.Latitude, place.Longitude)
}

func (gateway *OpenMeteoWeatherGateway) FindByCoordinates(ctx context.Context, lat, lon float64) (*entity.WeatherReport, error) {
	return gateway.fetch(ctx, CurrentLocationName, lat, lon)
}

func (gateway *OpenMeteoWeatherGateway) fetch(ctx context.Context, city string, lat, lon float64) (*entity.WeatherReport, error) {
	successResp, errResp, _, err := gateway.forecast.Request().
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParams(map[string]string{
			"latitude":      strconv.FormatFloat(lat, 'f', 4, 64),
			"longitude":     strconv.FormatFloat(lon, 'f', 4, 64),
			"current":       currentFields,
			"daily":         dailyFields,
			"timezone":      "UTC",
			"timeformat":    "unixtime",
			"forecast_days": strconv.Itoa(forecastDays + 1),
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute(ctx)
	if err != nil {
		return nil, apiError("forecast", errResp, err)
	}

	return toWeatherReport(city, lat, lon, successResp.(*external.ForecastResponse))
}

// toWeatherReport uses daily[0] for today's sunrise/sunset and daily[1..5] as the forecast.
func toWeatherReport(city string, lat, lon float64, response *external.ForecastResponse) (*entity.WeatherReport, error) {
	daily := response.Daily
	days := len(daily.Time)
	if days < forecastDays+1 || len(daily.WeatherCode) < days || len(daily.TemperatureMax) < days ||
		len(daily.TemperatureMin) < days || len(daily.Sunrise) < days || len(daily.Sunset) < days {
		return nil, fmt.Errorf("forecast response has %d daily entries, want %d", days, forecastDays+1)
	}

	current := response.Current
	reading := entity.WeatherReading{
		City:               city,
		TemperatureCelsius: current.Temperature,
		Condition:          ConditionFromWeatherCode(current.WeatherCode),
		HumidityPct:        current.RelativeHumidity,
		WindSpeedKmh:       current.WindSpeed,
		WindDirectionDeg:   current.WindDirection,
		Coordinates:        entity.Coordinates{Lat: lat, Lon: lon},
		SunriseEpochSec:    daily.Sunrise[0],
		SunsetEpochSec:     daily.Sunset[0],
	}

	forecast := make([]entity.ForecastDay, 0, forecastDays)
	for i := 1; i <= forecastDays; i++ {
		forecast = append(forecast, entity.ForecastDay{
			Date:      time.Unix(daily.Time[i], 0).UTC(),
			Condition: ConditionFromWeatherCode(daily.WeatherCode[i]),
			HighC:     daily.TemperatureMax[i],
			LowC:      daily.TemperatureMin[i],
		})
	}

	return &entity.WeatherReport{Reading: reading, Forecast: forecast}, nil
}

func apiError(operation string, errResp any, err error) error {
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Reason != "" {
			return fmt.Errorf("open-meteo %s: %s: %w", operation, apiErr.Reason, err)
		}
	}
	return fmt.Errorf("open-meteo %s: %w", operation, err)
}
