package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/usecase/auth"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

const (
	userIDContextKey       = "user_id"
	sessionTokenContextKey = "session_token"
)

// SessionConfig describes the session cookie.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Session resolves the session cookie into a user id for every request. Requests without a
// valid session continue unauthenticated; RequireAuth rejects them where needed.
func Session(useCase auth.UseCase, config SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(config.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			c.Set(sessionTokenContextKey, cookie.Value)
			userID, ok, err := useCase.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil {
				log.Warn("Failed to resolve session", zap.Error(err))
				return next(c)
			}
			if ok {
				c.Set(userIDContextKey, userID)
			}
			return next(c)
		}
	}
}

// RequireAuth answers 401 unless Session resolved a user.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := UserID(c); !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg.GetMessage("auth.error.not-authenticated")})
		}
		return next(c)
	}
}

// UserID returns the authenticated user of the request.
func UserID(c echo.Context) (uint, bool) {
	userID, ok := c.Get(userIDContextKey).(uint)
	return userID, ok
}

// SessionToken returns the raw session cookie value seen by Session.
func SessionToken(c echo.Context) string {
	token, _ := c.Get(sessionTokenContextKey).(string)
	return token
}

func SetSessionCookie(c echo.Context, config SessionConfig, token string) {
	c.SetCookie(&http.Cookie{
		Name:     config.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(config.TTL.Seconds()),
		HttpOnly: true,
		Secure:   config.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(sessionTokenContextKey, token)
}

func ClearSessionCookie(c echo.Context, config SessionConfig) {
	c.SetCookie(&http.Cookie{
		Name:     config.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   config.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
