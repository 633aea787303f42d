package handler

import (
	"log/slog"
	"net/http"

	"orderpad/internal/delivery/http/response"
	"orderpad/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PreferenceHandler holds dependencies for UI preference handlers
type PreferenceHandler struct {
	uc     usecase.PreferenceUsecase
	logger *slog.Logger
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(uc usecase.PreferenceUsecase, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		uc:     uc,
		logger: logger,
	}
}

// SetThemeRequest represents the request body for switching the theme
type SetThemeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

// ThemeResponse carries the active theme name
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// GetTheme returns the active theme, falling back to the configured
// default when none has been stored yet
func (h *PreferenceHandler) GetTheme(c echo.Context) error {
	theme, err := h.uc.Theme(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ThemeResponse{Theme: string(theme)}, "")
}

// SetTheme persists a new theme choice
func (h *PreferenceHandler) SetTheme(c echo.Context) error {
	var req SetThemeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid theme input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	theme, err := h.uc.SetTheme(c.Request().Context(), req.Theme)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ThemeResponse{Theme: string(theme)}, "Theme updated")
}
