package favorite

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type UseCase interface {
	FindAll(ctx context.Context, userID uint) ([]entity.FavoriteCity, error)

	// Add returns entity.ErrMissingFields for a blank city and entity.ErrFavoriteExists for duplicates
	Add(ctx context.Context, userID uint, request model.FavoriteRequest) (*entity.FavoriteCity, error)

	// Remove returns entity.ErrFavoriteNotFound when the favorite is missing or owned by someone else
	Remove(ctx context.Context, userID uint, favoriteID uint) error
}
