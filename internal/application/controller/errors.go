package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

type errorMapping struct {
	err    error
	status int
	key    string
}

// domainErrors maps sentinel errors onto a status and a catalogue key. Handlers may override
// the key for errors whose wording depends on the route.
var domainErrors = []errorMapping{
	{entity.ErrMissingFields, http.StatusBadRequest, "auth.error.missing-fields"},
	{entity.ErrUsernameTaken, http.StatusBadRequest, "auth.error.username-taken"},
	{entity.ErrEmailTaken, http.StatusBadRequest, "auth.error.email-taken"},
	{entity.ErrPasswordTooLong, http.StatusBadRequest, "auth.error.password-too-long"},
	{entity.ErrInvalidCredentials, http.StatusUnauthorized, "auth.error.invalid-credentials"},
	{entity.ErrUserNotFound, http.StatusNotFound, "auth.error.user-not-found"},
	{entity.ErrFavoriteExists, http.StatusBadRequest, "favorite.error.exists"},
	{entity.ErrFavoriteNotFound, http.StatusNotFound, "favorite.error.not-found"},
	{entity.ErrInvalidUnit, http.StatusBadRequest, "settings.error.invalid-unit"},
	{entity.ErrCityNotFound, http.StatusNotFound, "weather.error.city-not-found"},
	{entity.ErrInvalidCoordinates, http.StatusBadRequest, "weather.error.invalid-coordinates"},
}

// errorJSON writes the catalogue message for key as {"error": message}.
func errorJSON(c echo.Context, status int, key string, args ...any) error {
	return c.JSON(status, model.ErrorResponse{Error: msg.GetMessage(key, args...)})
}

// handleError answers with the mapping of a domain error, or 500 for anything else.
// overrides replaces the catalogue key of specific errors.
func handleError(c echo.Context, err error, overrides map[error]string, args ...any) error {
	for _, mapping := range domainErrors {
		if !errors.Is(err, mapping.err) {
			continue
		}
		key := mapping.key
		if override, ok := overrides[mapping.err]; ok {
			key = override
		}
		return errorJSON(c, mapping.status, key, args...)
	}

	log.Error(msg.GetMessage("error.internal"),
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.Error(err))
	return errorJSON(c, http.StatusInternalServerError, "error.internal")
}

func isDomainError(err error) bool {
	for _, mapping := range domainErrors {
		if errors.Is(err, mapping.err) {
			return true
		}
	}
	return false
}
