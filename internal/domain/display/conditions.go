package display

import (
	"strings"

	"weather-dashboard/internal/domain/entity"
)

const (
	DefaultIconKey    = "default"
	BackgroundNight   = "weather-night"
	BackgroundDefault = "weather-default"
)

type conditionStyle struct {
	condition  entity.Condition
	icon       string
	background string
	aliases    []string
}

// conditionTable is the single lookup used for icons, backgrounds and normalization.
var conditionTable = []conditionStyle{
	{entity.ConditionSunny, "sunny", "weather-sunny", []string{"sunny", "clear"}},
	{entity.ConditionCloudy, "cloudy", "weather-cloudy", []string{"cloudy", "partly-cloudy", "overcast"}},
	{entity.ConditionRainy, "rainy", "weather-rainy", []string{"rainy", "rain", "drizzle"}},
	{entity.ConditionSnowy, "snowy", "weather-snowy", []string{"snowy", "snow"}},
	{entity.ConditionThunderstorm, "thunderstorm", "weather-thunderstorm", []string{"thunderstorm", "storm"}},
}

var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]conditionStyle {
	index := make(map[string]conditionStyle)
	for _, style := range conditionTable {
		for _, alias := range style.aliases {
			index[alias] = style
		}
	}
	return index
}

func lookup(condition entity.Condition) (conditionStyle, bool) {
	style, ok := aliasIndex[strings.ToLower(strings.TrimSpace(string(condition)))]
	return style, ok
}

// NormalizeCondition maps a raw or synonym condition onto the canonical enum.
// The second result is false when the value is not recognized.
func NormalizeCondition(condition entity.Condition) (entity.Condition, bool) {
	style, ok := lookup(condition)
	if !ok {
		return entity.Condition(strings.ToLower(strings.TrimSpace(string(condition)))), false
	}
	return style.condition, true
}
