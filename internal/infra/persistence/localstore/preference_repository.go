package localstore

import (
	"context"

	"orderpad/internal/domain/entity"
	"orderpad/internal/domain/repository"
)

// preferenceRepository implements repository.PreferenceRepository over
// the local store's theme key.
type preferenceRepository struct {
	store *Store
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(store *Store) repository.PreferenceRepository {
	return &preferenceRepository{store: store}
}

func (r *preferenceRepository) Theme(ctx context.Context) (entity.Theme, error) {
	raw, found, err := r.store.readString(ctx, themeKey)
	if err != nil {
		return "", err
	}
	if !found {
		return "", repository.ErrThemeNotSet
	}

	theme, err := entity.ParseTheme(raw)
	if err != nil {
		// A corrupted value reads as unset rather than failing the app.
		return "", repository.ErrThemeNotSet
	}

	return theme, nil
}

func (r *preferenceRepository) SaveTheme(ctx context.Context, theme entity.Theme) error {
	return r.store.writeString(ctx, themeKey, string(theme))
}
