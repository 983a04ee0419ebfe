package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/train-booking-api/internal/middleware"
)

// ProfileStore is the slice of the user repository used by the profile
// endpoints.
type ProfileStore interface {
	UpdateProfile(ctx context.Context, id uint64, name, phone, city *string) error
}

// ProfileHandler serves the acting user's own profile.
type ProfileHandler struct {
	Users ProfileStore
}

func NewProfileHandler(users ProfileStore) *ProfileHandler { return &ProfileHandler{Users: users} }

type profileResp struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	City  *string `json:"city"`
	Email string  `json:"email"`
}

type profileReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// Get returns the acting user's profile fields.  Unset fields marshal as
// null.
func (h *ProfileHandler) Get(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	return c.JSON(http.StatusOK, profileResp{
		Name:  user.Name,
		Phone: user.Phone,
		City:  user.City,
		Email: user.Email,
	})
}

// Update overwrites the provided non-empty fields.  An empty string means
// the same as an absent field: the stored value is kept, so a field cannot
// be cleared through this endpoint.
func (h *ProfileHandler) Update(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" && req.Phone == "" && req.City == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid input data"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Users.UpdateProfile(ctx, user.ID, opt(req.Name), opt(req.Phone), opt(req.City)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "profile updated"})
}

// opt maps an empty string to nil so the repository leaves the column
// untouched.
func opt(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
