package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/auth"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

type AuthController struct {
	api     *echo.Group
	useCase auth.UseCase
	session middleware.SessionConfig
}

func NewAuthController(api *echo.Group, useCase auth.UseCase, session middleware.SessionConfig) *AuthController {
	return &AuthController{api: api, useCase: useCase, session: session}
}

// InitAuthRoutes initializes registration, login and session routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/register", controller.Register)
	controller.api.POST("/login", controller.Login)
	controller.api.POST("/logout", controller.Logout)
	controller.api.GET("/user", controller.CurrentUser, middleware.RequireAuth)
	controller.api.GET("/check-auth", controller.CheckAuth)
}

// Register godoc
// @Summary Register a user
// @Description Create an account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param user body model.RegisterRequest true "Account data"
// @Success 201 {object} model.UserResponse
// @Failure 400 {object} model.ErrorResponse "Missing fields or username/email taken"
// @Router /register [post]
func (controller *AuthController) Register(c echo.Context) error {
	var request model.RegisterRequest
	if err := c.Bind(&request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "error.invalid-body")
	}

	user, token, err := controller.useCase.Register(c.Request().Context(), request)
	if err != nil {
		return handleError(c, err, nil)
	}

	middleware.SetSessionCookie(c, controller.session, token)
	return c.JSON(http.StatusCreated, model.UserResponse{Message: msg.GetMessage("auth.registered"), User: user})
}

// Login godoc
// @Summary Log in
// @Description Check the credentials and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginRequest true "Credentials"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} model.ErrorResponse "Missing fields"
// @Failure 401 {object} model.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (controller *AuthController) Login(c echo.Context) error {
	var request model.LoginRequest
	if err := c.Bind(&request); err != nil {
		return errorJSON(c, http.StatusBadRequest, "error.invalid-body")
	}

	user, token, err := controller.useCase.Login(c.Request().Context(), request)
	if err != nil {
		return handleError(c, err, nil)
	}

	middleware.SetSessionCookie(c, controller.session, token)
	return c.JSON(http.StatusOK, model.UserResponse{Message: msg.GetMessage("auth.logged-in"), User: user})
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router /logout [post]
func (controller *AuthController) Logout(c echo.Context) error {
	if err := controller.useCase.Logout(c.Request().Context(), middleware.SessionToken(c)); err != nil {
		log.Warn("Failed to delete session", zap.Error(err))
	}

	middleware.ClearSessionCookie(c, controller.session)
	return c.JSON(http.StatusOK, model.MessageResponse{Message: msg.GetMessage("auth.logged-out")})
}

// CurrentUser godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} model.UserResponse
// @Failure 401 {object} model.ErrorResponse "Not authenticated"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /user [get]
func (controller *AuthController) CurrentUser(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	user, err := controller.useCase.FindUser(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, err, nil)
	}
	return c.JSON(http.StatusOK, model.UserResponse{User: user})
}

// CheckAuth godoc
// @Summary Session status
// @Description Always 200. A session whose user no longer exists is dropped.
// @Tags auth
// @Produce json
// @Success 200 {object} model.AuthStatusResponse
// @Router /check-auth [get]
func (controller *AuthController) CheckAuth(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusOK, model.AuthStatusResponse{Authenticated: false})
	}

	ctx := c.Request().Context()
	user, err := controller.useCase.FindUser(ctx, userID)
	if errors.Is(err, entity.ErrUserNotFound) {
		if err := controller.useCase.Logout(ctx, middleware.SessionToken(c)); err != nil {
			log.Warn("Failed to delete stale session", zap.Uint("user_id", userID), zap.Error(err))
		}
		middleware.ClearSessionCookie(c, controller.session)
		return c.JSON(http.StatusOK, model.AuthStatusResponse{Authenticated: false})
	}
	if err != nil {
		return handleError(c, err, nil)
	}
	return c.JSON(http.StatusOK, model.AuthStatusResponse{Authenticated: true, User: user})
}
