package favorite

import (
	"context"
	"fmt"
	"strings"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/model"
)

type favoriteUseCase struct {
	favoriteGateway db.FavoriteGateway
}

func NewFavoriteUseCase(favoriteGateway db.FavoriteGateway) UseCase {
	return &favoriteUseCase{favoriteGateway: favoriteGateway}
}

func (uc *favoriteUseCase) FindAll(ctx context.Context, userID uint) ([]entity.FavoriteCity, error) {
	favorites, err := uc.favoriteGateway.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites for user %d: %w", userID, err)
	}
	return favorites, nil
}

func (uc *favoriteUseCase) Add(ctx context.Context, userID uint, request model.FavoriteRequest) (*entity.FavoriteCity, error) {
	cityName := strings.TrimSpace(request.CityName)
	if cityName == "" {
		return nil, entity.ErrMissingFields
	}

	return uc.favoriteGateway.Create(ctx, entity.FavoriteCity{
		UserID:    userID,
		CityName:  cityName,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
	})
}

func (uc *favoriteUseCase) Remove(ctx context.Context, userID uint, favoriteID uint) error {
	deleted, err := uc.favoriteGateway.DeleteByIDAndUser(ctx, favoriteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite %d: %w", favoriteID, err)
	}
	if !deleted {
		return entity.ErrFavoriteNotFound
	}
	return nil
}
