package impl

import (
	"context"

	"orderpad/config"
	"orderpad/internal/domain/entity"
	domainerrors "orderpad/internal/domain/errors"
	"orderpad/internal/domain/repository"
	"orderpad/internal/errors"
	"orderpad/internal/usecase"

	"go.uber.org/fx"
)

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	preferenceRepo repository.PreferenceRepository
	defaultTheme   entity.Theme
}

// PreferenceServiceParams holds dependencies for PreferenceService, injected by Fx.
type PreferenceServiceParams struct {
	fx.In

	PreferenceRepo repository.PreferenceRepository
	Config         *config.Config
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(params PreferenceServiceParams) usecase.PreferenceUsecase {
	defaultTheme, err := entity.ParseTheme(params.Config.Theme.Default)
	if err != nil {
		defaultTheme = entity.ThemeDark
	}

	return &preferenceService{
		preferenceRepo: params.PreferenceRepo,
		defaultTheme:   defaultTheme,
	}
}

func (s *preferenceService) Theme(ctx context.Context) (entity.Theme, error) {
	theme, err := s.preferenceRepo.Theme(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrThemeNotSet) {
			return s.defaultTheme, nil
		}

		return "", err
	}

	return theme, nil
}

func (s *preferenceService) SetTheme(ctx context.Context, raw string) (entity.Theme, error) {
	theme, err := entity.ParseTheme(raw)
	if err != nil {
		return "", domainerrors.ErrInvalidTheme
	}

	if err := s.preferenceRepo.SaveTheme(ctx, theme); err != nil {
		return "", err
	}

	return theme, nil
}
