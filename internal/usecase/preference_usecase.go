package usecase

import (
	"context"

	"orderpad/internal/domain/entity"
)

// PreferenceUsecase defines the interface for the display preference.
type PreferenceUsecase interface {
	// Theme returns the persisted theme, falling back to the configured
	// default when nothing is stored yet.
	Theme(ctx context.Context) (entity.Theme, error)

	// SetTheme validates and persists a raw theme value.
	SetTheme(ctx context.Context, raw string) (entity.Theme, error)
}
