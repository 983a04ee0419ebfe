package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/train-booking-api/internal/middleware"
	"github.com/iliyamo/train-booking-api/internal/model"
)

// PassengerStore is the slice of the passenger repository the passenger
// endpoints need.
type PassengerStore interface {
	ListVisible(ctx context.Context, userID uint64) ([]model.Passenger, error)
	Insert(ctx context.Context, userID uint64, name string, age int) (uint64, error)
}

// PassengerHandler serves saved passenger profiles.
type PassengerHandler struct {
	Passengers PassengerStore
}

func NewPassengerHandler(passengers PassengerStore) *PassengerHandler {
	return &PassengerHandler{Passengers: passengers}
}

type passengerItem struct {
	ID     uint64  `json:"id"`
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	UserID *uint64 `json:"user_id"`
}

type addPassengerReq struct {
	Name string `json:"name"`
	Age  *int   `json:"age"`
}

// List returns the acting user's passengers together with the unowned
// shared pool.
func (h *PassengerHandler) List(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	ps, err := h.Passengers.ListVisible(ctx, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	out := make([]passengerItem, 0, len(ps))
	for _, p := range ps {
		out = append(out, passengerItem{ID: p.ID, Name: p.Name, Age: p.Age, UserID: p.UserID})
	}
	return c.JSON(http.StatusOK, out)
}

// Add saves a passenger owned by the acting user.  Age is a pointer so a
// missing field can be told apart from age zero.
func (h *PassengerHandler) Add(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	var req addPassengerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Age == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid passenger data"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Passengers.Insert(ctx, user.ID, req.Name, *req.Age)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "insert failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "passenger added", "passenger_id": id})
}
