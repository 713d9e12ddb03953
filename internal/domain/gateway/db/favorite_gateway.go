package db

import (
	"context"

	"weather-dashboard/internal/domain/entity"
)

type FavoriteGateway interface {
	FindAllByUser(ctx context.Context, userID uint) ([]entity.FavoriteCity, error)

	// Create returns entity.ErrFavoriteExists when the user already saved the city
	Create(ctx context.Context, favorite entity.FavoriteCity) (*entity.FavoriteCity, error)

	// DeleteByIDAndUser reports false when no favorite with that id belongs to the user
	DeleteByIDAndUser(ctx context.Context, id uint, userID uint) (bool, error)

	// FindDistinctCitiesWithKeysetPagination lists every favorited city name once, ordered by name,
	// starting strictly after lastCity
	FindDistinctCitiesWithKeysetPagination(ctx context.Context, lastCity string, size int) ([]string, error)
}
