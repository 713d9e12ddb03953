package api

import "weather-dashboard/internal/domain/entity"

// ConditionFromWeatherCode maps a WMO weather interpretation code onto a condition.
// Codes outside the published table fall back to cloudy.
func ConditionFromWeatherCode(code int) entity.Condition {
	switch {
	case code == 0 || code == 1:
		return entity.ConditionSunny
	case code == 2 || code == 3 || code == 45 || code == 48:
		return entity.ConditionCloudy
	case code >= 51 && code <= 67, code >= 80 && code <= 82:
		return entity.ConditionRainy
	case code >= 71 && code <= 77, code == 85 || code == 86:
		return entity.ConditionSnowy
	case code >= 95 && code <= 99:
		return entity.ConditionThunderstorm
	default:
		return entity.ConditionCloudy
	}
}
