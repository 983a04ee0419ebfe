package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/train-booking-api/internal/model"
)

// TrainAdminStore is the full timetable surface available to admins.
type TrainAdminStore interface {
	ListAll(ctx context.Context) ([]model.Train, error)
	Insert(ctx context.Context, fromCity, toCity, departure string, price float64) (uint64, error)
	Update(ctx context.Context, id uint64, price *float64, departure, fromCity, toCity *string) error
	Delete(ctx context.Context, id uint64) error
}

// UserLister is the admin view over the user table.
type UserLister interface {
	ListAll(ctx context.Context) ([]model.User, error)
}

// AdminHandler serves the flight-management endpoints.  The admin check
// itself lives in the middleware chain, not here.
type AdminHandler struct {
	Trains TrainAdminStore
	Users  UserLister
}

func NewAdminHandler(trains TrainAdminStore, users UserLister) *AdminHandler {
	return &AdminHandler{Trains: trains, Users: users}
}

// addFlightReq uses the column-style keys the admin tooling sends, unlike
// the public "from"/"to" response keys.  Price is a pointer so a missing
// price is distinguishable from zero.
type addFlightReq struct {
	FromCity string   `json:"from_city"`
	ToCity   string   `json:"to_city"`
	Time     string   `json:"time"`
	Price    *float64 `json:"price"`
}

// updateFlightReq accepts any subset of the train fields.  Pointer fields
// record per-key presence; absent keys leave the column untouched.  Price
// must be a JSON number: a numeric string like "50" fails the bind and is
// rejected with 400.
type updateFlightReq struct {
	Price    *float64 `json:"price"`
	Time     *string  `json:"time"`
	FromCity *string  `json:"from_city"`
	ToCity   *string  `json:"to_city"`
}

type adminUserItem struct {
	ID      uint64  `json:"id"`
	Email   string  `json:"email"`
	IsAdmin bool    `json:"is_admin"`
	Name    *string `json:"name"`
}

// ListFlights returns the whole timetable.
func (h *AdminHandler) ListFlights(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	trains, err := h.Trains.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toTrainDTOs(trains))
}

// AddFlight inserts a timetable entry.  Every field is required.
func (h *AdminHandler) AddFlight(c echo.Context) error {
	var req addFlightReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train data"})
	}
	if req.FromCity == "" || req.ToCity == "" || req.Time == "" || req.Price == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train data"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Trains.Insert(ctx, req.FromCity, req.ToCity, req.Time, *req.Price)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "insert failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "train added", "train_id": id})
}

// UpdateFlight overwrites the fields present in the body.  A price that is
// not a JSON number fails the bind and is rejected with 400.
func (h *AdminHandler) UpdateFlight(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
	}

	var req updateFlightReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid price"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Trains.Update(ctx, id, req.Price, req.Time, req.FromCity, req.ToCity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "train updated", "train_id": id})
}

// DeleteFlight removes a timetable entry.  Orders referencing it are left
// in place with a dangling train id.
func (h *AdminHandler) DeleteFlight(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Trains.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "train deleted", "train_id": id})
}

// ListUsers returns every user in a reduced projection; password hashes
// never appear in a response.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	users, err := h.Users.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	out := make([]adminUserItem, 0, len(users))
	for _, u := range users {
		out = append(out, adminUserItem{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin, Name: u.Name})
	}
	return c.JSON(http.StatusOK, out)
}
