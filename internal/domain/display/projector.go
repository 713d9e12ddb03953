// Package display turns weather readings into render-ready state.
//
// Every function here is pure: the result depends only on the arguments,
// including the evaluation instant used for day/night detection.
package display

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"weather-dashboard/internal/domain/entity"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IconVariant is a symbolic icon key, optionally decorated for night.
type IconVariant struct {
	Key   string `json:"key"`
	Night bool   `json:"night"`
}

// CSSClass renders the variant the way the dashboard stylesheet names icons.
func (i IconVariant) CSSClass() string {
	if i.Night {
		return "icon-" + i.Key + " icon-night"
	}
	return "icon-" + i.Key
}

// DisplayState is the projection of one reading for one unit at one instant.
type DisplayState struct {
	City             string             `json:"city"`
	Unit             entity.Unit        `json:"unit"`
	Temperature      float64            `json:"temperature"`
	TemperatureLabel string             `json:"temperatureLabel"`
	Condition        entity.Condition   `json:"condition"`
	ConditionLabel   string             `json:"conditionLabel"`
	Icon             IconVariant        `json:"icon"`
	Theme            Theme              `json:"theme"`
	BackgroundClass  string             `json:"backgroundClass"`
	IsNight          bool               `json:"isNight"`
	HumidityPct      float64            `json:"humidity"`
	WindSpeedKmh     float64            `json:"windSpeed"`
	WindDirectionDeg float64            `json:"windDirection"`
	Coordinates      entity.Coordinates `json:"coordinates"`
}

// ConvertTemperature converts a Celsius value to the requested unit.
// Fahrenheit results are rounded to the nearest integer; Celsius is returned unchanged.
func ConvertTemperature(celsius float64, unit entity.Unit) float64 {
	if unit == entity.UnitFahrenheit {
		return math.Round(celsius*9/5 + 32)
	}
	return celsius
}

// IsNightTime reports whether now falls before sunrise or after sunset.
// Sunrise and sunset themselves count as day.
func IsNightTime(sunriseEpochSec, sunsetEpochSec, nowEpochSec int64) bool {
	return nowEpochSec < sunriseEpochSec || nowEpochSec > sunsetEpochSec
}

// SelectIcon never fails: unknown conditions map to DefaultIconKey.
func SelectIcon(condition entity.Condition, isNight bool) IconVariant {
	key := DefaultIconKey
	if style, ok := lookup(condition); ok {
		key = style.icon
	}
	return IconVariant{Key: key, Night: isNight}
}

func SelectTheme(isNight bool) Theme {
	if isNight {
		return ThemeDark
	}
	return ThemeLight
}

// SelectBackgroundClass returns the night class whenever isNight is set, regardless of condition.
func SelectBackgroundClass(condition entity.Condition, isNight bool) string {
	if isNight {
		return BackgroundNight
	}
	if style, ok := lookup(condition); ok {
		return style.background
	}
	return BackgroundDefault
}

// BuildDisplayState composes the projection for a reading. Calling it twice with the
// same arguments yields equal values.
func BuildDisplayState(reading entity.WeatherReading, unit entity.Unit, nowEpochSec int64) DisplayState {
	unit = normalizeUnit(unit)
	isNight := IsNightTime(reading.SunriseEpochSec, reading.SunsetEpochSec, nowEpochSec)
	condition, _ := NormalizeCondition(reading.Condition)

	state := DisplayState{
		City:             reading.City,
		Unit:             unit,
		Condition:        condition,
		ConditionLabel:   conditionLabel(condition),
		Icon:             SelectIcon(reading.Condition, isNight),
		Theme:            SelectTheme(isNight),
		BackgroundClass:  SelectBackgroundClass(reading.Condition, isNight),
		IsNight:          isNight,
		HumidityPct:      finiteOrZero(reading.HumidityPct),
		WindSpeedKmh:     finiteOrZero(reading.WindSpeedKmh),
		WindDirectionDeg: normalizeDegrees(reading.WindDirectionDeg),
		Coordinates: entity.Coordinates{
			Lat: finiteOrZero(reading.Coordinates.Lat),
			Lon: finiteOrZero(reading.Coordinates.Lon),
		},
	}

	if isFinite(reading.TemperatureCelsius) {
		state.Temperature = ConvertTemperature(reading.TemperatureCelsius, unit)
		state.TemperatureLabel = temperatureLabel(state.Temperature, unit)
	} else {
		state.TemperatureLabel = "--°" + unitSymbol(unit)
	}
	return state
}

func normalizeUnit(unit entity.Unit) entity.Unit {
	if unit == entity.UnitFahrenheit {
		return unit
	}
	return entity.UnitCelsius
}

func unitSymbol(unit entity.Unit) string {
	if unit == entity.UnitFahrenheit {
		return "F"
	}
	return "C"
}

func temperatureLabel(value float64, unit entity.Unit) string {
	return fmt.Sprintf("%d°%s", int(math.Round(value)), unitSymbol(unit))
}

func conditionLabel(condition entity.Condition) string {
	value := string(condition)
	if value == "" {
		return "Unknown"
	}
	r, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(r)) + strings.ToLower(value[size:])
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOrZero(v float64) float64 {
	if isFinite(v) {
		return v
	}
	return 0
}

// normalizeDegrees wraps any finite angle into [0, 360).
func normalizeDegrees(deg float64) float64 {
	if !isFinite(deg) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
