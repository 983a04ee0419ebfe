package handler // handler defines the HTTP handlers of the booking API

import (
	"context" // context bounds database calls per request
	"time"    // timeout durations

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/iliyamo/train-booking-api/internal/model"
)

// dbTimeout bounds every persistence call made from a handler.
const dbTimeout = 5 * time.Second

// reqCtx derives a bounded context from the request.  Callers must defer
// the cancel func.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// trainDTO is the wire shape of a timetable entry.  The JSON keys "from"
// and "to" differ from the column names on purpose; clients were built
// against them.
type trainDTO struct {
	ID    uint64  `json:"id"`
	From  string  `json:"from"`
	To    string  `json:"to"`
	Time  string  `json:"time"`
	Price float64 `json:"price"`
}

func toTrainDTO(t model.Train) trainDTO {
	return trainDTO{ID: t.ID, From: t.FromCity, To: t.ToCity, Time: t.Time, Price: t.Price}
}

func toTrainDTOs(ts []model.Train) []trainDTO {
	out := make([]trainDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTrainDTO(t))
	}
	return out
}
