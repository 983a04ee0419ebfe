package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/train-booking-api/internal/model"
)

// PromotionStore lists the promotions shown to everyone.
type PromotionStore interface {
	ListAll(ctx context.Context) ([]model.Promotion, error)
}

// PromotionHandler serves the unauthenticated promotions listing.
type PromotionHandler struct {
	Promotions PromotionStore
}

func NewPromotionHandler(promotions PromotionStore) *PromotionHandler {
	return &PromotionHandler{Promotions: promotions}
}

type promotionItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// List returns every promotion.
func (h *PromotionHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	promos, err := h.Promotions.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	out := make([]promotionItem, 0, len(promos))
	for _, p := range promos {
		out = append(out, promotionItem{ID: p.ID, Title: p.Title, Description: p.Description})
	}
	return c.JSON(http.StatusOK, out)
}
