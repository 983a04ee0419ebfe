package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/train-booking-api/internal/middleware"
	"github.com/iliyamo/train-booking-api/internal/model"
	"github.com/iliyamo/train-booking-api/internal/queue"
	"github.com/iliyamo/train-booking-api/internal/repository"
)

// OrderStore is the slice of the order repository the order endpoints need.
type OrderStore interface {
	Create(ctx context.Context, userID, trainID uint64, passengerName string, passengerAge int) (model.Order, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Order, error)
	MarkPaid(ctx context.Context, id, userID uint64) error
}

// TrainGetter resolves the train referenced by a new order.
type TrainGetter interface {
	GetByID(ctx context.Context, id uint64) (model.Train, error)
}

// OrderHandler serves the authenticated booking endpoints.  PublishPaid is
// called after a successful payment; when nil (tests) no event is emitted,
// and publish failures never affect the response since the payment is
// already committed.
type OrderHandler struct {
	Orders      OrderStore
	Trains      TrainGetter
	PublishPaid func(ctx context.Context, ev queue.OrderPaidEvent) error
}

func NewOrderHandler(orders OrderStore, trains TrainGetter,
	publish func(ctx context.Context, ev queue.OrderPaidEvent) error) *OrderHandler {
	return &OrderHandler{Orders: orders, Trains: trains, PublishPaid: publish}
}

// passengerPart uses a pointer age so a missing field is distinguishable
// from age zero, like the standalone passenger endpoint.
type passengerPart struct {
	Name string `json:"name"`
	Age  *int   `json:"age"`
}
type createOrderReq struct {
	TrainID   uint64         `json:"trainId"`
	Passenger *passengerPart `json:"passenger"`
}
type orderPart struct {
	ID      uint64 `json:"id"`
	TrainID uint64 `json:"trainId"`
	Paid    bool   `json:"paid"`
}
type orderItem struct {
	ID            uint64 `json:"id"`
	TrainID       uint64 `json:"trainId"`
	Paid          bool   `json:"paid"`
	PassengerName string `json:"passenger_name"`
	PassengerAge  int    `json:"passenger_age"`
}

// Create books a ticket on a train for the acting user.  The order starts
// unpaid.
func (h *OrderHandler) Create(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.TrainID == 0 || req.Passenger == nil || req.Passenger.Name == "" || req.Passenger.Age == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "trainId and passenger are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	train, err := h.Trains.GetByID(ctx, req.TrainID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	order, err := h.Orders.Create(ctx, user.ID, train.ID, req.Passenger.Name, *req.Passenger.Age)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create order failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "ticket booked",
		"order":   orderPart{ID: order.ID, TrainID: order.TrainID, Paid: order.Paid},
	})
}

// List returns the acting user's orders, nobody else's.
func (h *OrderHandler) List(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	orders, err := h.Orders.ListByUser(ctx, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	out := make([]orderItem, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderItem{
			ID:            o.ID,
			TrainID:       o.TrainID,
			Paid:          o.Paid,
			PassengerName: o.PassengerName,
			PassengerAge:  o.PassengerAge,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Pay marks one of the acting user's orders as paid.  Paying an already
// paid order is a no-op success; the flag never flips back.
func (h *OrderHandler) Pay(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Orders.MarkPaid(ctx, id, user.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		case errors.Is(err, repository.ErrAlreadyPaid):
			return c.JSON(http.StatusOK, echo.Map{"message": "order already paid"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "payment failed"})
		}
	}

	if h.PublishPaid != nil {
		ev := queue.OrderPaidEvent{
			OrderID: id,
			UserID:  user.ID,
			PaidAt:  time.Now().UTC().Format(time.RFC3339),
		}
		go func() { _ = h.PublishPaid(context.Background(), ev) }()
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "payment successful", "order_id": id})
}
