package settings

import (
	"context"
	"fmt"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/db"
)

type settingsUseCase struct {
	userGateway db.UserGateway
}

func NewSettingsUseCase(userGateway db.UserGateway) UseCase {
	return &settingsUseCase{userGateway: userGateway}
}

func (uc *settingsUseCase) UpdateTemperatureUnit(ctx context.Context, userID uint, value string) (*entity.User, error) {
	unit, ok := entity.ParseUnit(value)
	if !ok {
		return nil, entity.ErrInvalidUnit
	}

	if err := uc.userGateway.UpdateTemperatureUnit(ctx, userID, unit); err != nil {
		return nil, err
	}

	user, err := uc.userGateway.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user %d: %w", userID, err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}

func (uc *settingsUseCase) PreferredUnit(ctx context.Context, userID uint) (entity.Unit, error) {
	user, err := uc.userGateway.FindByID(ctx, userID)
	if err != nil {
		return entity.UnitCelsius, err
	}
	if user == nil {
		return entity.UnitCelsius, nil
	}
	if unit, ok := entity.ParseUnit(string(user.TemperatureUnit)); ok {
		return unit, nil
	}
	return entity.UnitCelsius, nil
}
