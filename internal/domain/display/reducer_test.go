package display

import (
	"reflect"
	"testing"
	"time"

	"weather-dashboard/internal/domain/entity"
)

func sampleReport() entity.WeatherReport {
	base := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	forecast := make([]entity.ForecastDay, 0, 5)
	for i := 1; i <= 5; i++ {
		forecast = append(forecast, entity.ForecastDay{
			Date:      base.AddDate(0, 0, i),
			Condition: entity.ConditionSunny,
			HighC:     30,
			LowC:      10,
		})
	}
	return entity.WeatherReport{Reading: sampleReading(), Forecast: forecast}
}

func TestProjectWithoutReading(t *testing.T) {
	if _, ok := Project(NewState(entity.UnitCelsius), 0); ok {
		t.Fatal("Project must report false before a reading is loaded")
	}
}

func TestReduceFlow(t *testing.T) {
	initial := NewState(entity.UnitCelsius)
	loaded := Reduce(initial, ReadingLoaded{Report: sampleReport()})

	if initial.Report != nil {
		t.Fatal("Reduce mutated its input state")
	}

	celsius, ok := Project(loaded, 43200)
	if !ok {
		t.Fatal("expected a view after ReadingLoaded")
	}
	if celsius.Current.TemperatureLabel != "22°C" || celsius.Forecast[0].Label != "30° / 10°" {
		t.Errorf("celsius view = %q / %q", celsius.Current.TemperatureLabel, celsius.Forecast[0].Label)
	}

	toggled := Reduce(loaded, UnitSelected{Unit: entity.UnitFahrenheit})
	if loaded.Unit != entity.UnitCelsius {
		t.Fatal("UnitSelected mutated the previous state")
	}
	fahrenheit, _ := Project(toggled, 43200)
	if fahrenheit.Current.TemperatureLabel != "72°F" || fahrenheit.Forecast[0].Label != "86° / 50°" {
		t.Errorf("fahrenheit view = %q / %q", fahrenheit.Current.TemperatureLabel, fahrenheit.Forecast[0].Label)
	}
	if fahrenheit.Current.City != celsius.Current.City {
		t.Error("unit change must re-project the same reading")
	}

	ignored := Reduce(toggled, UnitSelected{Unit: "kelvin"})
	if ignored.Unit != entity.UnitFahrenheit {
		t.Errorf("invalid unit changed state to %q", ignored.Unit)
	}

	reset := Reduce(toggled, SessionReset{})
	if reset.Unit != entity.UnitCelsius || reset.Report != nil {
		t.Errorf("SessionReset = %+v", reset)
	}
}

func TestReadingLoadedCopiesForecast(t *testing.T) {
	report := sampleReport()
	state := Reduce(NewState(entity.UnitCelsius), ReadingLoaded{Report: report})

	report.Forecast[0].HighC = -40
	if state.Report.Forecast[0].HighC != 30 {
		t.Error("state shares the caller's forecast slice")
	}
}

func TestBuildViewIdempotent(t *testing.T) {
	report := sampleReport()
	first := BuildView(report, entity.UnitFahrenheit, 1000)
	second := BuildView(report, entity.UnitFahrenheit, 1000)
	if !reflect.DeepEqual(first, second) {
		t.Error("BuildView not idempotent")
	}
	if len(first.Forecast) != 5 || first.Forecast[0].Weekday != "Sunday" || first.Forecast[0].Date != "2026-10-18" {
		t.Errorf("unexpected forecast projection %+v", first.Forecast[0])
	}
	if first.Forecast[0].Icon.Night {
		t.Error("forecast icons are always day variants")
	}
}
