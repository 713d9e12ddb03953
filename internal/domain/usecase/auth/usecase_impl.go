package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/gateway/session"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
)

type authUseCase struct {
	userGateway    db.UserGateway
	sessionGateway session.SessionGateway
	bcryptCost     int
}

// NewAuthUseCase hashes passwords with bcryptCost; zero selects bcrypt.DefaultCost.
func NewAuthUseCase(userGateway db.UserGateway, sessionGateway session.SessionGateway, bcryptCost int) UseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authUseCase{
		userGateway:    userGateway,
		sessionGateway: sessionGateway,
		bcryptCost:     bcryptCost,
	}
}

func (uc *authUseCase) Register(ctx context.Context, request model.RegisterRequest) (*entity.User, string, error) {
	username := strings.TrimSpace(request.Username)
	email := strings.TrimSpace(request.Email)
	if username == "" || email == "" || request.Password == "" {
		return nil, "", entity.ErrMissingFields
	}

	taken, err := uc.userGateway.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, "", entity.ErrUsernameTaken
	}

	taken, err = uc.userGateway.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, "", entity.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), uc.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, "", entity.ErrPasswordTooLong
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:        username,
		Email:           email,
		PasswordHash:    string(hash),
		TemperatureUnit: entity.UnitCelsius,
	}
	if err := uc.userGateway.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := uc.sessionGateway.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	log.Info("User registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, request model.LoginRequest) (*entity.User, string, error) {
	username := strings.TrimSpace(request.Username)
	if username == "" || request.Password == "" {
		return nil, "", entity.ErrMissingFields
	}

	user, err := uc.userGateway.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.sessionGateway.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *authUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return uc.sessionGateway.Delete(ctx, token)
}

func (uc *authUseCase) Authenticate(ctx context.Context, token string) (uint, bool, error) {
	if token == "" {
		return 0, false, nil
	}
	return uc.sessionGateway.Resolve(ctx, token)
}

func (uc *authUseCase) FindUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := uc.userGateway.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %d: %w", id, err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}
