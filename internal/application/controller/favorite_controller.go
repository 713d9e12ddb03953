package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/favorite"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/numberutils"
)

type FavoriteController struct {
	api     *echo.Group
	useCase favorite.UseCase
}

func NewFavoriteController(api *echo.Group, useCase favorite.UseCase) *FavoriteController {
	return &FavoriteController{api: api, useCase: useCase}
}

// InitFavoriteRoutes initializes favorite city routes, all of them behind a session
func (controller *FavoriteController) InitFavoriteRoutes() {
	group := controller.api.Group("/favorites", middleware.RequireAuth)
	group.GET("", controller.FindAll)
	group.POST("", controller.Add)
	group.DELETE("/:id", controller.Remove)
}

// FindAll godoc
// @Summary List favorite cities
// @Tags favorites
// @Produce json
// @Success 200 {object} model.FavoritesResponse
// @Failure 401 {object} model.ErrorResponse "Not authenticated"
// @Router /favorites [get]
func (controller *FavoriteController) FindAll(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	favorites, err := controller.useCase.FindAll(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, err, nil)
	}
	if favorites == nil {
		favorites = []entity.FavoriteCity{}
	}
	return c.JSON(http.StatusOK, model.FavoritesResponse{Favorites: favorites})
}

// Add godoc
// @Summary Add a favorite city
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body model.FavoriteRequest true "City"
// @Success 201 {object} model.FavoriteResponse
// @Failure 400 {object} model.ErrorResponse "Missing city or already a favorite"
// @Failure 401 {object} model.ErrorResponse "Not authenticated"
// @Router /favorites [post]
func (controller *FavoriteController) Add(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	var request model.FavoriteRequest
	if err := c.Bind(&request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "error.invalid-body")
	}

	saved, err := controller.useCase.Add(c.Request().Context(), userID, request)
	if err != nil {
		return handleError(c, err, map[error]string{entity.ErrMissingFields: "favorite.error.missing-city"})
	}
	return c.JSON(http.StatusCreated, model.FavoriteResponse{Message: msg.GetMessage("favorite.added"), Favorite: saved})
}

// Remove godoc
// @Summary Remove a favorite city
// @Tags favorites
// @Produce json
// @Param id path int true "Favorite id"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse "Invalid id"
// @Failure 401 {object} model.ErrorResponse "Not authenticated"
// @Failure 404 {object} model.ErrorResponse "Favorite not found"
// @Router /favorites/{id} [delete]
func (controller *FavoriteController) Remove(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	favoriteID, err := numberutils.ToUintWithError(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "favorite.error.invalid-id", c.Param("id"))
	}

	if err := controller.useCase.Remove(c.Request().Context(), userID, favoriteID); err != nil {
		return handleError(c, err, nil)
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: msg.GetMessage("favorite.removed")})
}
