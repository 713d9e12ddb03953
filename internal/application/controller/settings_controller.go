package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/settings"
	"weather-dashboard/pkg/msg"
)

type SettingsController struct {
	api     *echo.Group
	useCase settings.UseCase
}

func NewSettingsController(api *echo.Group, useCase settings.UseCase) *SettingsController {
	return &SettingsController{api: api, useCase: useCase}
}

// InitSettingsRoutes initializes user preference routes
func (controller *SettingsController) InitSettingsRoutes() {
	controller.api.PUT("/settings", controller.UpdateSettings, middleware.RequireAuth)
}

// UpdateSettings godoc
// @Summary Update preferences
// @Description Set the preferred temperature unit
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body model.SettingsRequest true "Preferences"
// @Success 200 {object} model.SettingsResponse
// @Failure 400 {object} model.ErrorResponse "Invalid temperature unit"
// @Failure 401 {object} model.ErrorResponse "Not authenticated"
// @Router /settings [put]
func (controller *SettingsController) UpdateSettings(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	var request model.SettingsRequest
	if err := c.Bind(&request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "error.invalid-body")
	}

	user, err := controller.useCase.UpdateTemperatureUnit(c.Request().Context(), userID, request.TemperatureUnit)
	if err != nil {
		return handleError(c, err, nil, request.TemperatureUnit)
	}
	return c.JSON(http.StatusOK, model.SettingsResponse{
		Message:         msg.GetMessage("settings.updated"),
		TemperatureUnit: user.TemperatureUnit,
		User:            user,
	})
}
