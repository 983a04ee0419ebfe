package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/train-booking-api/internal/model"
	"github.com/iliyamo/train-booking-api/internal/repository"
)

// TrainReader is the read-only slice of the train repository used by the
// public timetable endpoints.
type TrainReader interface {
	Search(ctx context.Context, q repository.TrainSearchQuery) ([]model.Train, error)
	GetByID(ctx context.Context, id uint64) (model.Train, error)
}

// TrainHandler serves the unauthenticated timetable endpoints.
type TrainHandler struct {
	Trains TrainReader
}

func NewTrainHandler(trains TrainReader) *TrainHandler { return &TrainHandler{Trains: trains} }

// Search filters the timetable by optional ?from= and ?to= query params.
// Both are case-insensitive substring matches; with neither set the whole
// timetable comes back.
func (h *TrainHandler) Search(c echo.Context) error {
	q := repository.TrainSearchQuery{
		From: c.QueryParam("from"),
		To:   c.QueryParam("to"),
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	trains, err := h.Trains.Search(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "search failed"})
	}
	return c.JSON(http.StatusOK, toTrainDTOs(trains))
}

// Get returns a single timetable entry by id.
func (h *TrainHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Trains.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toTrainDTO(t))
}
