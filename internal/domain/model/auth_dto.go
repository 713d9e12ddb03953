package model

import "weather-dashboard/internal/domain/entity"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SettingsRequest struct {
	TemperatureUnit string `json:"temperature_unit"`
}

type FavoriteRequest struct {
	CityName  string   `json:"city_name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type UserResponse struct {
	Message string       `json:"message,omitempty"`
	User    *entity.User `json:"user"`
}

// SettingsResponse repeats the stored unit next to the user.
type SettingsResponse struct {
	Message         string       `json:"message"`
	TemperatureUnit entity.Unit  `json:"temperature_unit"`
	User            *entity.User `json:"user"`
}

type AuthStatusResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *entity.User `json:"user,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type FavoriteResponse struct {
	Message  string               `json:"message"`
	Favorite *entity.FavoriteCity `json:"favorite"`
}

type FavoritesResponse struct {
	Favorites []entity.FavoriteCity `json:"favorites"`
}
