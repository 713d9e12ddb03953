package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-dashboard/internal/domain/entity"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
}

func TestMockFindByCityRanges(t *testing.T) {
	gateway := NewMockWeatherGateway(42, fixedClock)

	for i := 0; i < 200; i++ {
		report, err := gateway.FindByCity(context.Background(), " London ")
		if err != nil {
			t.Fatalf("FindByCity() error = %v", err)
		}
		r := report.Reading
		if r.City != "London" {
			t.Fatalf("city = %q", r.City)
		}
		if r.TemperatureCelsius < 5 || r.TemperatureCelsius > 34 {
			t.Fatalf("temperature %v out of range", r.TemperatureCelsius)
		}
		if r.HumidityPct < 40 || r.HumidityPct > 79 {
			t.Fatalf("humidity %v out of range", r.HumidityPct)
		}
		if r.WindSpeedKmh < 5 || r.WindSpeedKmh > 34 {
			t.Fatalf("wind speed %v out of range", r.WindSpeedKmh)
		}
		if r.WindDirectionDeg < 0 || r.WindDirectionDeg >= 360 {
			t.Fatalf("wind direction %v out of range", r.WindDirectionDeg)
		}
		if r.Coordinates.Lat < mockBaseLat-10 || r.Coordinates.Lat > mockBaseLat+10 {
			t.Fatalf("latitude %v out of range", r.Coordinates.Lat)
		}
		if r.SunsetEpochSec-r.SunriseEpochSec != 12*3600 {
			t.Fatalf("sunrise/sunset not 06:00/18:00")
		}

		if len(report.Forecast) != 5 {
			t.Fatalf("forecast has %d days", len(report.Forecast))
		}
		for j, day := range report.Forecast {
			if j > 0 && !day.Date.After(report.Forecast[j-1].Date) {
				t.Fatalf("forecast dates not ascending")
			}
			if day.HighC < 20 || day.HighC > 34 || day.LowC < 5 || day.LowC > 14 {
				t.Fatalf("forecast temps out of range: %+v", day)
			}
			if day.Condition != r.Condition {
				t.Fatalf("forecast condition %q differs from reading %q", day.Condition, r.Condition)
			}
		}
	}
}

func TestMockSunriseIsSixOfCurrentDay(t *testing.T) {
	report, _ := NewMockWeatherGateway(1, fixedClock).FindByCity(context.Background(), "Oslo")
	want := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC).Unix()
	if report.Reading.SunriseEpochSec != want {
		t.Errorf("sunrise = %d, want %d", report.Reading.SunriseEpochSec, want)
	}
	if got := report.Forecast[0].Date; !got.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first forecast day = %v", got)
	}
}

func TestMockIsReproducibleForSeed(t *testing.T) {
	a, _ := NewMockWeatherGateway(7, fixedClock).FindByCity(context.Background(), "Rome")
	b, _ := NewMockWeatherGateway(7, fixedClock).FindByCity(context.Background(), "Rome")
	if a.Reading != b.Reading {
		t.Errorf("same seed produced different readings:\n%+v\n%+v", a.Reading, b.Reading)
	}
}

func TestMockFindByCoordinates(t *testing.T) {
	report, err := NewMockWeatherGateway(3, fixedClock).FindByCoordinates(context.Background(), 51.5, -0.12)
	if err != nil {
		t.Fatalf("FindByCoordinates() error = %v", err)
	}
	if report.Reading.City != CurrentLocationName {
		t.Errorf("city = %q", report.Reading.City)
	}
	if report.Reading.Coordinates != (entity.Coordinates{Lat: 51.5, Lon: -0.12}) {
		t.Errorf("coordinates = %+v", report.Reading.Coordinates)
	}
}

func TestMockBlankCity(t *testing.T) {
	_, err := NewMockWeatherGateway(3, fixedClock).FindByCity(context.Background(), "   ")
	if !errors.Is(err, entity.ErrCityNotFound) {
		t.Errorf("err = %v, want ErrCityNotFound", err)
	}
}

func TestMockHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMockWeatherGateway(3, fixedClock).FindByCity(ctx, "Rome"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
