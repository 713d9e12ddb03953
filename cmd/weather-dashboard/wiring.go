package main

import (
	"strings"
	"time"

	"golang.org/x/time/rate"

	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/pkg/http"
	"weather-dashboard/pkg/redis"
	"weather-dashboard/pkg/resource"
	"weather-dashboard/pkg/util/numberutils"
)

const (
	providerMock      = "mock"
	providerOpenMeteo = "open-meteo"
)

func newRedisConfig() *redis.Config {
	config := redis.NewRedisConfig()
	config.Host = resource.GetStringOrDefault("app.redis.host", config.Host)
	config.Port = numberutils.ToIntWithDefault(resource.GetString("app.redis.port"), config.Port)
	config.Password = resource.GetString("app.redis.password")
	config.Database = numberutils.ToIntWithDefault(resource.GetString("app.redis.database"), 0)
	config.KeyPrefix = resource.GetStringOrDefault("app.redis.key-prefix", config.KeyPrefix)
	return config
}

// newWeatherGateway builds the configured reading source. An empty provider selects
// app.weather.provider.
func newWeatherGateway(provider string, seed uint64) api.WeatherGateway {
	if provider == "" {
		provider = resource.GetStringOrDefault("app.weather.provider", providerMock)
	}

	if strings.EqualFold(provider, providerOpenMeteo) {
		requestsPerSecond := resource.GetFloat64("app.weather.open-meteo.requests-per-second")
		if requestsPerSecond <= 0 {
			requestsPerSecond = 5
		}
		burst := numberutils.ToIntWithDefault(resource.GetString("app.weather.open-meteo.burst"), 1)

		timeout := resource.GetDuration("app.weather.open-meteo.timeout")
		if timeout <= 0 {
			timeout = 10 * time.Second
		}

		return api.NewOpenMeteoWeatherGateway(
			resource.GetStringOrDefault("app.weather.open-meteo.geocoding-url", "https://geocoding-api.open-meteo.com"),
			resource.GetStringOrDefault("app.weather.open-meteo.forecast-url", "https://api.open-meteo.com"),
			http.ClientOptions{
				ConnectionTimeout: timeout,
				ReadTimeout:       timeout,
				Backoff:           http.DefaultBackoff(),
				Limiter:           rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
			})
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return api.NewMockWeatherGateway(seed, nil)
}
