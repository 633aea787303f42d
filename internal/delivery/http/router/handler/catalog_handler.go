package handler

import (
	"log/slog"
	"net/http"

	"orderpad/internal/delivery/http/response"
	"orderpad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler holds dependencies for catalog-related handlers
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddProductRequest represents the request body for adding a product
type AddProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Size     string  `json:"size"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category" validate:"required"`
}

// List renders the grouped catalog. The search term hides non-matching
// products without removing them from the payload.
func (h *CatalogHandler) List(c echo.Context) error {
	groups, err := h.uc.Groups(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, groups, "")
}

// Add handles creating a custom catalog product
func (h *CatalogHandler) Add(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.Add(c.Request().Context(), usecase.NewProduct{
		Name:     req.Name,
		Size:     req.Size,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, product, "Product added")
}

// Remove handles deleting a catalog product. Removing an unknown id is a
// no-op, matching the store semantics.
func (h *CatalogHandler) Remove(c echo.Context) error {
	if err := h.uc.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Product removed")
}
