package entity

import (
	"strings"
	"time"
)

// Condition is the categorical weather state of a reading.
type Condition string

const (
	ConditionSunny        Condition = "sunny"
	ConditionCloudy       Condition = "cloudy"
	ConditionRainy        Condition = "rainy"
	ConditionSnowy        Condition = "snowy"
	ConditionThunderstorm Condition = "thunderstorm"
)

// Conditions lists the canonical conditions a reading source may produce.
var Conditions = []Condition{
	ConditionSunny,
	ConditionCloudy,
	ConditionRainy,
	ConditionSnowy,
	ConditionThunderstorm,
}

// Unit is the temperature unit preference.
type Unit string

const (
	UnitCelsius    Unit = "celsius"
	UnitFahrenheit Unit = "fahrenheit"
)

// ParseUnit accepts the long names and their one letter abbreviations, case-insensitively.
func ParseUnit(value string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "celsius", "c":
		return UnitCelsius, true
	case "fahrenheit", "f":
		return UnitFahrenheit, true
	}
	return "", false
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherReading is one snapshot of observations for a location.
type WeatherReading struct {
	City               string      `json:"city"`
	TemperatureCelsius float64     `json:"temperature"`
	Condition          Condition   `json:"condition"`
	HumidityPct        float64     `json:"humidity"`
	WindSpeedKmh       float64     `json:"windSpeed"`
	WindDirectionDeg   float64     `json:"windDirection"`
	Coordinates        Coordinates `json:"coordinates"`
	SunriseEpochSec    int64       `json:"sunrise"`
	SunsetEpochSec     int64       `json:"sunset"`
}

type ForecastDay struct {
	Date      time.Time `json:"date"`
	Condition Condition `json:"condition"`
	HighC     float64   `json:"highTemp"`
	LowC      float64   `json:"lowTemp"`
}

// WeatherReport is what a reading source returns: the current reading and the next five days.
type WeatherReport struct {
	Reading  WeatherReading `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
}
