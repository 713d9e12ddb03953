package controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/settings"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/numberutils"
)

type WeatherController struct {
	api             *echo.Group
	useCase         weather.UseCase
	settingsUseCase settings.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, settingsUseCase settings.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, settingsUseCase: settingsUseCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.FindByCity)
	controller.api.GET("/weather/coordinates", controller.FindByCoordinates)
	controller.api.POST("/weather/display", controller.Project)
	controller.api.GET("/weather/schedule", controller.RefreshFavorites)
}

// FindByCity godoc
// @Summary Weather for a city
// @Description Current reading, five day forecast and their display projection.
// @Description Without unit the user's preference is used, else celsius.
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Param unit query string false "celsius or fahrenheit"
// @Success 200 {object} model.WeatherResponse
// @Failure 400 {object} model.ErrorResponse "Missing city or invalid unit"
// @Failure 404 {object} model.ErrorResponse "City not found"
// @Failure 503 {object} model.ErrorResponse "Weather provider unavailable"
// @Router /weather [get]
func (controller *WeatherController) FindByCity(c echo.Context) error {
	unit, ok := controller.resolveUnit(c)
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "weather.error.invalid-unit", c.QueryParam("unit"))
	}

	city := strings.TrimSpace(c.QueryParam("city"))
	response, err := controller.useCase.FindByCity(c.Request().Context(), city, unit)
	if err != nil {
		return controller.weatherError(c, err, city)
	}
	return c.JSON(http.StatusOK, response)
}

// FindByCoordinates godoc
// @Summary Weather for coordinates
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param unit query string false "celsius or fahrenheit"
// @Success 200 {object} model.WeatherResponse
// @Failure 400 {object} model.ErrorResponse "Invalid coordinates or unit"
// @Failure 503 {object} model.ErrorResponse "Weather provider unavailable"
// @Router /weather/coordinates [get]
func (controller *WeatherController) FindByCoordinates(c echo.Context) error {
	unit, ok := controller.resolveUnit(c)
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "weather.error.invalid-unit", c.QueryParam("unit"))
	}

	lat, latErr := numberutils.ToFloat64WithError(c.QueryParam("lat"))
	lon, lonErr := numberutils.ToFloat64WithError(c.QueryParam("lon"))
	if latErr != nil || lonErr != nil {
		return errorJSON(c, http.StatusBadRequest, "weather.error.invalid-coordinates")
	}

	response, err := controller.useCase.FindByCoordinates(c.Request().Context(), lat, lon, unit)
	if err != nil {
		return controller.weatherError(c, err, "")
	}
	return c.JSON(http.StatusOK, response)
}

// Project godoc
// @Summary Project a reading
// @Description Renders a caller-supplied reading without contacting any provider.
// @Tags weather
// @Accept json
// @Produce json
// @Param request body model.DisplayRequest true "Reading, forecast, unit and optional epoch seconds"
// @Success 200 {object} display.View
// @Failure 400 {object} model.ErrorResponse "Invalid body or unit"
// @Router /weather/display [post]
func (controller *WeatherController) Project(c echo.Context) error {
	var request model.DisplayRequest
	if err := c.Bind(&request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "error.invalid-body")
	}

	view, err := controller.useCase.Project(request)
	if err != nil {
		return handleError(c, err, map[error]string{entity.ErrInvalidUnit: "weather.error.invalid-unit"}, request.Unit)
	}
	return c.JSON(http.StatusOK, view)
}

// RefreshFavorites godoc
// @Summary Refresh favorite cities
// @Description Enqueue a cache refresh of every favorited city
// @Tags weather
// @Produce json
// @Success 202 {object} map[string]string "Refresh scheduled"
// @Router /weather/schedule [get]
func (controller *WeatherController) RefreshFavorites(c echo.Context) error {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	// the request context ends with the response
	ctx := context.WithoutCancel(c.Request().Context())
	go func() {
		if _, err := controller.useCase.EnqueueFavoritesRefresh(ctx, requestID); err != nil {
			log.Error(msg.GetMessage("weather.refresh.cron.failed"), zap.String("request_id", requestID), zap.Error(err))
		}
	}()

	return c.JSON(http.StatusAccepted, map[string]string{
		"message":    "Favorite cities refresh scheduled successfully",
		"request_id": requestID,
	})
}

// resolveUnit reads ?unit=, then the user's preference, then falls back to celsius.
// It reports false when the query value is not a known unit.
func (controller *WeatherController) resolveUnit(c echo.Context) (entity.Unit, bool) {
	if value := c.QueryParam("unit"); value != "" {
		return entity.ParseUnit(value)
	}

	userID, ok := middleware.UserID(c)
	if !ok || controller.settingsUseCase == nil {
		return entity.UnitCelsius, true
	}

	unit, err := controller.settingsUseCase.PreferredUnit(c.Request().Context(), userID)
	if err != nil {
		log.Warn("Failed to load preferred unit", zap.Uint("user_id", userID), zap.Error(err))
		return entity.UnitCelsius, true
	}
	return unit, true
}

// weatherError maps provider failures that are not domain errors onto 503.
func (controller *WeatherController) weatherError(c echo.Context, err error, city string) error {
	if isDomainError(err) {
		return handleError(c, err, map[error]string{entity.ErrMissingFields: "weather.error.missing-city"}, city)
	}

	log.Error(msg.GetMessage("weather.error.unavailable"), zap.String("city", city), zap.Error(err))
	return errorJSON(c, http.StatusServiceUnavailable, "weather.error.unavailable")
}
