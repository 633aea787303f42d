package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"orderpad/internal/delivery/http/response"
	domainerrors "orderpad/internal/domain/errors"
	"orderpad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// dateParamLayout is the calendar-day format for history range filters
const dateParamLayout = "2006-01-02"

// HistoryHandler holds dependencies for saved-order handlers
type HistoryHandler struct {
	uc     usecase.HistoryUsecase
	logger *slog.Logger
}

// NewHistoryHandler is the constructor for HistoryHandler
func NewHistoryHandler(uc usecase.HistoryUsecase, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// DeleteRequest represents the request body for deleting selected entries
type DeleteRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// DeleteResponse reports how many entries were actually removed
type DeleteResponse struct {
	Removed int `json:"removed"`
}

// List returns saved orders, most recent first. Optional start/end query
// params are calendar days in local time; both bounds are inclusive.
func (h *HistoryHandler) List(c echo.Context) error {
	start, err := parseDateParam(c.QueryParam("start"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid start date, expected YYYY-MM-DD")
	}
	end, err := parseDateParam(c.QueryParam("end"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid end date, expected YYYY-MM-DD")
	}

	entries, err := h.uc.List(c.Request().Context(), start, end)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// Get returns a single saved order by id
func (h *HistoryHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid history entry id")
	}

	entry, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, entry, "")
}

// Delete removes the selected entries. An empty selection is rejected
// before touching the store.
func (h *HistoryHandler) Delete(c echo.Context) error {
	var req DeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete selection")
	}

	removed, err := h.uc.Delete(c.Request().Context(), req.IDs)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, DeleteResponse{Removed: removed}, "Orders deleted")
}

// Export renders one month of history as a CSV attachment
func (h *HistoryHandler) Export(c echo.Context) error {
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil {
		return domainerrors.ErrInvalidExportFilter
	}
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return domainerrors.ErrInvalidExportFilter
	}

	export, err := h.uc.ExportCSV(c.Request().Context(), month, year)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", export.Filename))

	return c.Blob(http.StatusOK, "text/csv", export.Content)
}

// parseDateParam reads an optional calendar-day filter. Empty means
// unbounded.
func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	day, err := time.ParseInLocation(dateParamLayout, raw, time.Local)
	if err != nil {
		return nil, err
	}

	return &day, nil
}
