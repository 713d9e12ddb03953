package display

import (
	"math"
	"testing"

	"weather-dashboard/internal/domain/entity"
)

func TestConvertTemperature(t *testing.T) {
	for c := -90; c <= 60; c++ {
		celsius := float64(c)
		want := math.Round(celsius*9/5 + 32)
		if got := ConvertTemperature(celsius, entity.UnitFahrenheit); got != want {
			t.Fatalf("ConvertTemperature(%v, fahrenheit) = %v, want %v", celsius, got, want)
		}
		if got := ConvertTemperature(celsius, entity.UnitCelsius); got != celsius {
			t.Fatalf("ConvertTemperature(%v, celsius) = %v, want unchanged", celsius, got)
		}
	}

	if got := ConvertTemperature(21.5, entity.UnitCelsius); got != 21.5 {
		t.Errorf("celsius must not be rounded, got %v", got)
	}
	if got := ConvertTemperature(0, entity.UnitFahrenheit); got != 32 {
		t.Errorf("0C = %vF, want 32", got)
	}
	if got := ConvertTemperature(100, entity.UnitFahrenheit); got != 212 {
		t.Errorf("100C = %vF, want 212", got)
	}
}

func TestIsNightTime(t *testing.T) {
	const sunrise, sunset = 21600, 64800

	tests := []struct {
		name string
		now  int64
		want bool
	}{
		{"noon", 43200, false},
		{"before sunrise", 10000, true},
		{"after sunset", 70000, true},
		{"at sunrise", sunrise, false},
		{"at sunset", sunset, false},
		{"one second before sunrise", sunrise - 1, true},
		{"one second after sunset", sunset + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNightTime(sunrise, sunset, tt.now); got != tt.want {
				t.Errorf("IsNightTime(%d, %d, %d) = %v, want %v", sunrise, sunset, tt.now, got, tt.want)
			}
		})
	}
}

func TestSelectIcon(t *testing.T) {
	if SelectIcon("thunderstorm", false) != SelectIcon("storm", false) {
		t.Error("thunderstorm and storm must share an icon")
	}

	tests := []struct {
		condition entity.Condition
		night     bool
		want      IconVariant
	}{
		{"sunny", false, IconVariant{Key: "sunny"}},
		{"Clear", false, IconVariant{Key: "sunny"}},
		{"  OVERCAST ", false, IconVariant{Key: "cloudy"}},
		{"drizzle", false, IconVariant{Key: "rainy"}},
		{"snow", true, IconVariant{Key: "snowy", Night: true}},
		{"unknown-condition", false, IconVariant{Key: DefaultIconKey}},
		{"", true, IconVariant{Key: DefaultIconKey, Night: true}},
	}
	for _, tt := range tests {
		if got := SelectIcon(tt.condition, tt.night); got != tt.want {
			t.Errorf("SelectIcon(%q, %v) = %+v, want %+v", tt.condition, tt.night, got, tt.want)
		}
	}

	night := SelectIcon("rainy", true)
	day := SelectIcon("rainy", false)
	if night.Key != day.Key || !night.Night {
		t.Errorf("night variant should decorate the same key, got %+v vs %+v", night, day)
	}
	if night.CSSClass() != "icon-rainy icon-night" || day.CSSClass() != "icon-rainy" {
		t.Errorf("unexpected css classes %q / %q", night.CSSClass(), day.CSSClass())
	}
}

func TestSelectTheme(t *testing.T) {
	if SelectTheme(true) != ThemeDark || SelectTheme(false) != ThemeLight {
		t.Error("night must be dark and day light")
	}
}

func TestSelectBackgroundClass(t *testing.T) {
	tests := []struct {
		condition entity.Condition
		night     bool
		want      string
	}{
		{"sunny", true, BackgroundNight},
		{"thunderstorm", true, BackgroundNight},
		{"sunny", false, "weather-sunny"},
		{"RAIN", false, "weather-rainy"},
		{"drizzle", false, "weather-rainy"},
		{"rainy", false, "weather-rainy"},
		{"partly-cloudy", false, "weather-cloudy"},
		{"snowy", false, "weather-snowy"},
		{"storm", false, "weather-thunderstorm"},
		{"fog", false, BackgroundDefault},
	}
	for _, tt := range tests {
		if got := SelectBackgroundClass(tt.condition, tt.night); got != tt.want {
			t.Errorf("SelectBackgroundClass(%q, %v) = %q, want %q", tt.condition, tt.night, got, tt.want)
		}
	}
}

func sampleReading() entity.WeatherReading {
	return entity.WeatherReading{
		City:               "London",
		TemperatureCelsius: 22,
		Condition:          entity.ConditionRainy,
		HumidityPct:        65,
		WindSpeedKmh:       12,
		WindDirectionDeg:   270,
		Coordinates:        entity.Coordinates{Lat: 51.5072, Lon: -0.1276},
		SunriseEpochSec:    21600,
		SunsetEpochSec:     64800,
	}
}

func TestBuildDisplayState(t *testing.T) {
	got := BuildDisplayState(sampleReading(), entity.UnitFahrenheit, 43200)

	want := DisplayState{
		City:             "London",
		Unit:             entity.UnitFahrenheit,
		Temperature:      72,
		TemperatureLabel: "72°F",
		Condition:        entity.ConditionRainy,
		ConditionLabel:   "Rainy",
		Icon:             IconVariant{Key: "rainy"},
		Theme:            ThemeLight,
		BackgroundClass:  "weather-rainy",
		IsNight:          false,
		HumidityPct:      65,
		WindSpeedKmh:     12,
		WindDirectionDeg: 270,
		Coordinates:      entity.Coordinates{Lat: 51.5072, Lon: -0.1276},
	}
	if got != want {
		t.Errorf("BuildDisplayState() =\n%+v\nwant\n%+v", got, want)
	}

	night := BuildDisplayState(sampleReading(), entity.UnitCelsius, 70000)
	if !night.IsNight || night.Theme != ThemeDark || night.BackgroundClass != BackgroundNight || !night.Icon.Night {
		t.Errorf("night projection inconsistent: %+v", night)
	}
	if night.TemperatureLabel != "22°C" || night.Temperature != 22 {
		t.Errorf("celsius projection = %v %q", night.Temperature, night.TemperatureLabel)
	}
}

func TestBuildDisplayStateIdempotent(t *testing.T) {
	reading := sampleReading()
	first := BuildDisplayState(reading, entity.UnitFahrenheit, 50000)
	second := BuildDisplayState(reading, entity.UnitFahrenheit, 50000)
	if first != second {
		t.Errorf("BuildDisplayState not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestBuildDisplayStateNormalizesMalformedInput(t *testing.T) {
	reading := sampleReading()
	reading.TemperatureCelsius = math.NaN()
	reading.WindDirectionDeg = -90
	reading.HumidityPct = math.Inf(1)
	reading.Condition = "volcanic ash"

	got := BuildDisplayState(reading, "kelvin", 43200)

	if got.Unit != entity.UnitCelsius {
		t.Errorf("unknown unit should fall back to celsius, got %q", got.Unit)
	}
	if got.Temperature != 0 || got.TemperatureLabel != "--°C" {
		t.Errorf("non-finite temperature = %v %q", got.Temperature, got.TemperatureLabel)
	}
	if got.WindDirectionDeg != 270 {
		t.Errorf("wind direction = %v, want 270", got.WindDirectionDeg)
	}
	if got.HumidityPct != 0 {
		t.Errorf("humidity = %v, want 0", got.HumidityPct)
	}
	if got.Icon.Key != DefaultIconKey || got.BackgroundClass != BackgroundDefault {
		t.Errorf("unknown condition should use defaults, got %+v / %q", got.Icon, got.BackgroundClass)
	}
	if got.ConditionLabel != "Volcanic ash" {
		t.Errorf("condition label = %q", got.ConditionLabel)
	}

	again := BuildDisplayState(reading, "kelvin", 43200)
	if got != again {
		t.Error("normalized state must stay comparable and idempotent")
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := map[float64]float64{0: 0, 359: 359, 360: 0, 725: 5, -1: 359, -720: 0}
	for in, want := range tests {
		if got := normalizeDegrees(in); got != want {
			t.Errorf("normalizeDegrees(%v) = %v, want %v", in, got, want)
		}
	}
	if got := normalizeDegrees(math.NaN()); got != 0 {
		t.Errorf("normalizeDegrees(NaN) = %v", got)
	}
}
