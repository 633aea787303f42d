package repository

import (
	"context"
	"errors"

	"orderpad/internal/domain/entity"
)

// ErrThemeNotSet is returned when no theme preference has been persisted yet.
var ErrThemeNotSet = errors.New("theme preference not set")

// PreferenceRepository defines the interface for the persisted display
// preference.
type PreferenceRepository interface {
	// Theme returns the persisted theme, or ErrThemeNotSet when absent.
	Theme(ctx context.Context) (entity.Theme, error)

	// SaveTheme persists the theme, overwriting any previous value.
	SaveTheme(ctx context.Context, theme entity.Theme) error
}
