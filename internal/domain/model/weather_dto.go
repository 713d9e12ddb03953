package model

import (
	"weather-dashboard/internal/domain/display"
	"weather-dashboard/internal/domain/entity"
)

// WeatherResponse carries the raw report and its projection for the requested unit.
type WeatherResponse struct {
	Report  entity.WeatherReport `json:"report"`
	Display display.View         `json:"display"`
}

// DisplayRequest is a caller-supplied reading to project. Now defaults to the server clock.
type DisplayRequest struct {
	Reading  entity.WeatherReading `json:"reading"`
	Forecast []entity.ForecastDay  `json:"forecast"`
	Unit     string                `json:"unit"`
	Now      *int64                `json:"now"`
}

// RefreshMessage is the SQS body of a favorite city refresh.
type RefreshMessage struct {
	City string `json:"city"`
}

type RefreshResponse struct {
	Enqueued int `json:"enqueued"`
	Failed   int `json:"failed"`
}
