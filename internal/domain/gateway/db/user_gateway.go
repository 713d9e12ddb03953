package db

import (
	"context"

	"weather-dashboard/internal/domain/entity"
)

// UserGateway finders return nil, nil when no row matches.
type UserGateway interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	Create(ctx context.Context, user *entity.User) error
	UpdateTemperatureUnit(ctx context.Context, id uint, unit entity.Unit) error
}
