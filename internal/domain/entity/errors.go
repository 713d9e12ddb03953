package entity

import "errors"

// Domain errors returned by gateways and use cases. Controllers map them onto
// status codes and catalogue messages.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrFavoriteExists     = errors.New("favorite city already exists")
	ErrFavoriteNotFound   = errors.New("favorite city not found")
	ErrInvalidUnit        = errors.New("invalid temperature unit")
	ErrCityNotFound       = errors.New("city not found")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)
