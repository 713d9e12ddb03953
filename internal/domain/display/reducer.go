package display

import "weather-dashboard/internal/domain/entity"

// State is the dashboard preference and data threaded through Reduce.
// Values are never mutated in place; Reduce always returns a new State.
type State struct {
	Unit   entity.Unit
	Report *entity.WeatherReport
}

func NewState(unit entity.Unit) State {
	return State{Unit: normalizeUnit(unit)}
}

type Action interface {
	apply(state State) State
}

// ReadingLoaded replaces the current report.
type ReadingLoaded struct {
	Report entity.WeatherReport
}

func (a ReadingLoaded) apply(state State) State {
	report := a.Report
	report.Forecast = append([]entity.ForecastDay(nil), a.Report.Forecast...)
	state.Report = &report
	return state
}

// UnitSelected switches the unit. Unknown units leave the state unchanged.
type UnitSelected struct {
	Unit entity.Unit
}

func (a UnitSelected) apply(state State) State {
	if unit, ok := entity.ParseUnit(string(a.Unit)); ok {
		state.Unit = unit
	}
	return state
}

// SessionReset restores the defaults: Celsius and no reading.
type SessionReset struct{}

func (SessionReset) apply(State) State {
	return NewState(entity.UnitCelsius)
}

func Reduce(state State, action Action) State {
	if action == nil {
		return state
	}
	return action.apply(state)
}

// View is everything the rendering layer needs for one dashboard refresh.
type View struct {
	Current  DisplayState      `json:"current"`
	Forecast []ForecastDisplay `json:"forecast"`
}

func BuildView(report entity.WeatherReport, unit entity.Unit, nowEpochSec int64) View {
	return View{
		Current:  BuildDisplayState(report.Reading, unit, nowEpochSec),
		Forecast: BuildForecastDisplay(report.Forecast, unit),
	}
}

// Project renders the state at the given instant. It reports false until a reading is loaded.
func Project(state State, nowEpochSec int64) (View, bool) {
	if state.Report == nil {
		return View{}, false
	}
	return BuildView(*state.Report, state.Unit, nowEpochSec), true
}
