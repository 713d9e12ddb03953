package auth

import (
	"context"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type UseCase interface {
	// Register creates the user and opens a session for it
	Register(ctx context.Context, request model.RegisterRequest) (*entity.User, string, error)

	// Login checks the password and opens a session
	Login(ctx context.Context, request model.LoginRequest) (*entity.User, string, error)

	Logout(ctx context.Context, token string) error

	// Authenticate resolves a session token to a user id
	Authenticate(ctx context.Context, token string) (uint, bool, error)

	// FindUser returns entity.ErrUserNotFound for deleted users
	FindUser(ctx context.Context, id uint) (*entity.User, error)
}
