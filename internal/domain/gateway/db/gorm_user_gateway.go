package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"weather-dashboard/internal/domain/entity"
)

type GormUserGateway struct {
	DB *gorm.DB
}

var _ UserGateway = (*GormUserGateway)(nil)

func NewGormUserGateway(db *gorm.DB) *GormUserGateway {
	return &GormUserGateway{DB: db}
}

func (gateway *GormUserGateway) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return gateway.findOne(ctx, "id = ?", id)
}

func (gateway *GormUserGateway) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return gateway.findOne(ctx, "username = ?", username)
}

func (gateway *GormUserGateway) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return gateway.exists(ctx, "username = ?", username)
}

func (gateway *GormUserGateway) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return gateway.exists(ctx, "email = ?", email)
}

// Create maps a unique violation that slipped past the Exists checks to the taken field.
// The connection is opened with TranslateError so gorm surfaces ErrDuplicatedKey.
func (gateway *GormUserGateway) Create(ctx context.Context, user *entity.User) error {
	err := gateway.DB.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return duplicateUserError(ctx, gateway, user)
	}
	return err
}

type userLookup interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// duplicateUserError falls back to ErrUsernameTaken when neither lookup confirms the clash.
func duplicateUserError(ctx context.Context, lookup userLookup, user *entity.User) error {
	if taken, err := lookup.ExistsByUsername(ctx, user.Username); err == nil && taken {
		return entity.ErrUsernameTaken
	}
	if taken, err := lookup.ExistsByEmail(ctx, user.Email); err == nil && taken {
		return entity.ErrEmailTaken
	}
	return entity.ErrUsernameTaken
}

func (gateway *GormUserGateway) UpdateTemperatureUnit(ctx context.Context, id uint, unit entity.Unit) error {
	result := gateway.DB.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Update("temperature_unit", unit)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func (gateway *GormUserGateway) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.WithContext(ctx).Where(query, args...).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *GormUserGateway) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := gateway.DB.WithContext(ctx).Model(&entity.User{}).Where(query, args...).Count(&count).Error
	return count > 0, err
}
