package settings

import (
	"context"

	"weather-dashboard/internal/domain/entity"
)

type UseCase interface {
	// UpdateTemperatureUnit accepts celsius or fahrenheit and returns entity.ErrInvalidUnit otherwise
	UpdateTemperatureUnit(ctx context.Context, userID uint, unit string) (*entity.User, error)

	// PreferredUnit falls back to celsius when the user no longer exists
	PreferredUnit(ctx context.Context, userID uint) (entity.Unit, error)
}
