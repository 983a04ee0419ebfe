package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/train-booking-api/internal/middleware"
	"github.com/iliyamo/train-booking-api/internal/model"
)

// SupportStore is the slice of the support ticket repository the support
// endpoints need.
type SupportStore interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.SupportTicket, error)
	Insert(ctx context.Context, userID uint64, message string) (uint64, error)
}

// SupportHandler serves the support ticket endpoints.
type SupportHandler struct {
	Tickets SupportStore
}

func NewSupportHandler(tickets SupportStore) *SupportHandler {
	return &SupportHandler{Tickets: tickets}
}

type ticketItem struct {
	ID       uint64 `json:"id"`
	Message  string `json:"message"`
	Resolved bool   `json:"resolved"`
}

type createTicketReq struct {
	Message string `json:"message"`
}

// List returns the acting user's tickets only.
func (h *SupportHandler) List(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	tickets, err := h.Tickets.ListByUser(ctx, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	out := make([]ticketItem, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ticketItem{ID: t.ID, Message: t.Message, Resolved: t.Resolved})
	}
	return c.JSON(http.StatusOK, out)
}

// Create files a ticket; resolved starts false.
func (h *SupportHandler) Create(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}

	var req createTicketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message is required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Tickets.Insert(ctx, user.ID, req.Message)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "insert failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "ticket created", "ticket_id": id})
}
