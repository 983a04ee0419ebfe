package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"context"      // context bounds the user lookup per request
	"database/sql" // sql.ErrNoRows signals a vanished token subject
	"errors"       // errors.Is distinguishes lookup failures
	"net/http"     // HTTP status codes for responses
	"strings"      // string utilities for prefix checking and trimming
	"time"         // timeout for the user lookup

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/train-booking-api/internal/model"
	"github.com/iliyamo/train-booking-api/internal/utils"
)

// userKey is the context key under which RequireUser stores the resolved
// user record.
const userKey = "user"

// UserLoader resolves a token subject to a full user record.  *repository.UserRepo
// satisfies it; tests substitute an in-memory fake.
type UserLoader interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// RequireUser returns an Echo middleware that validates a Bearer access
// token, resolves it to a user record and stores the record in the request
// context.  A missing or malformed header and an invalid or expired token
// all produce 401; expired vs invalid differ only in the message.  A token
// whose user no longer exists produces 404.
func RequireUser(secret string, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
			}
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid auth header"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			uid, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				msg := "invalid token"
				if errors.Is(err, utils.ErrTokenExpired) {
					msg = "token expired"
				}
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": msg})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			u, err := users.GetByID(ctx, uid)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
			}

			c.Set(userKey, u)
			return next(c)
		}
	}
}

// RequireAdmin returns a middleware enforcing the admin flag on the user
// resolved by RequireUser.  It must run after RequireUser in the chain.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := c.Get(userKey).(model.User)
			if !ok || !u.IsAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "admin privileges required"})
			}
			return next(c)
		}
	}
}

// UserFrom returns the user record stored by RequireUser.  The second
// return value is false when the middleware did not run for this route.
func UserFrom(c echo.Context) (model.User, bool) {
	u, ok := c.Get(userKey).(model.User)
	return u, ok
}
