package display

import (
	"fmt"
	"math"

	"weather-dashboard/internal/domain/entity"
)

type ForecastDisplay struct {
	Date           string           `json:"date"`
	Weekday        string           `json:"weekday"`
	Condition      entity.Condition `json:"condition"`
	ConditionLabel string           `json:"conditionLabel"`
	Icon           IconVariant      `json:"icon"`
	High           float64          `json:"high"`
	Low            float64          `json:"low"`
	Label          string           `json:"label"`
}

// BuildForecastDisplay projects forecast days through the same unit as the current reading.
// Forecast icons are always the day variant.
func BuildForecastDisplay(days []entity.ForecastDay, unit entity.Unit) []ForecastDisplay {
	unit = normalizeUnit(unit)
	result := make([]ForecastDisplay, 0, len(days))
	for _, day := range days {
		condition, _ := NormalizeCondition(day.Condition)
		high := ConvertTemperature(finiteOrZero(day.HighC), unit)
		low := ConvertTemperature(finiteOrZero(day.LowC), unit)
		result = append(result, ForecastDisplay{
			Date:           day.Date.Format("2006-01-02"),
			Weekday:        day.Date.Weekday().String(),
			Condition:      condition,
			ConditionLabel: conditionLabel(condition),
			Icon:           SelectIcon(day.Condition, false),
			High:           high,
			Low:            low,
			Label:          fmt.Sprintf("%d° / %d°", int(math.Round(high)), int(math.Round(low))),
		})
	}
	return result
}
