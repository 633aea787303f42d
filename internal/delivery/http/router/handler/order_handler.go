package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"orderpad/internal/delivery/http/response"
	"orderpad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler holds dependencies for order draft handlers
type OrderHandler struct {
	order   usecase.OrderUsecase
	history usecase.HistoryUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(order usecase.OrderUsecase, history usecase.HistoryUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		order:   order,
		history: history,
		logger:  logger,
	}
}

// SetQuantityRequest represents the request body for a direct quantity
// entry. Quantity is untyped so free-form input survives binding; it is
// coerced the way the stepper input reads: non-numeric counts as 0.
type SetQuantityRequest struct {
	Quantity any `json:"quantity"`
}

// QuantityResponse echoes the stored quantity after a draft edit
type QuantityResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// TotalResponse carries the running total plus its display rendering
type TotalResponse struct {
	Total   float64 `json:"total"`
	Display string  `json:"display"`
}

// Get returns the current draft quantities
func (h *OrderHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.order.Quantities(), "")
}

// SetQuantity handles direct numeric entry for one product
func (h *OrderHandler) SetQuantity(c echo.Context) error {
	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	stored := h.order.SetQuantity(c.Param("id"), coerceQuantity(req.Quantity))

	return response.Success(c, http.StatusOK, QuantityResponse{
		ProductID: c.Param("id"),
		Quantity:  stored,
	}, "")
}

// Increment handles the stepper plus button
func (h *OrderHandler) Increment(c echo.Context) error {
	stored := h.order.Increment(c.Param("id"))

	return response.Success(c, http.StatusOK, QuantityResponse{
		ProductID: c.Param("id"),
		Quantity:  stored,
	}, "")
}

// Decrement handles the stepper minus button; at 0 it stays a no-op
func (h *OrderHandler) Decrement(c echo.Context) error {
	stored := h.order.Decrement(c.Param("id"))

	return response.Success(c, http.StatusOK, QuantityResponse{
		ProductID: c.Param("id"),
		Quantity:  stored,
	}, "")
}

// Total returns the running total over products visible under the
// search term. Rounding to two decimals happens here, at display time.
func (h *OrderHandler) Total(c echo.Context) error {
	total, err := h.order.Total(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, TotalResponse{
		Total:   total,
		Display: fmt.Sprintf("%.2f", total),
	}, "")
}

// Reset zeroes the draft
func (h *OrderHandler) Reset(c echo.Context) error {
	h.order.Reset()

	return response.Success(c, http.StatusOK, nil, "Reset successfully!")
}

// LoadLast replaces the draft with the most recent saved order
func (h *OrderHandler) LoadLast(c echo.Context) error {
	if err := h.order.LoadLast(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.order.Quantities(), "Last order loaded!")
}

// Save finalizes the draft into a history entry
func (h *OrderHandler) Save(c echo.Context) error {
	ctx := c.Request().Context()

	items, total, err := h.order.Snapshot(ctx)
	if err != nil {
		return err
	}

	entry, err := h.history.Save(ctx, items, total)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, entry, "Order saved successfully!")
}

// coerceQuantity reads free-form quantity input: numbers pass through,
// numeric strings parse, anything else counts as 0. Clamping to >= 0
// happens in the draft itself.
func coerceQuantity(raw any) int {
	switch v := raw.(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}

		return n
	default:
		return 0
	}
}
