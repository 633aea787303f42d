// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"orderpad/internal/domain/entity"
	domainerrors "orderpad/internal/domain/errors"
	"orderpad/internal/domain/repository"
	"orderpad/internal/domain/service"
	"orderpad/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	seedSource  service.SeedSource
	favourites  usecase.FavouritesUsecase
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	SeedSource  service.SeedSource
	Favourites  usecase.FavouritesUsecase
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		seedSource:  params.SeedSource,
		favourites:  params.Favourites,
		logger:      params.Logger,
	}
}

// Load seeds the catalog once: a persisted, non-empty catalog is left
// unchanged. A failing seed source leaves the catalog empty and the app
// running.
func (s *catalogService) Load(ctx context.Context) error {
	products, err := s.catalogRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}

	seeded, err := s.seedSource.Fetch(ctx)
	if err != nil {
		s.logger.Warn("Seed catalog unavailable, starting with an empty catalog",
			slog.Any("error", err),
		)

		return nil
	}
	if len(seeded) == 0 {
		return nil
	}

	if err := s.catalogRepo.Replace(ctx, seeded); err != nil {
		return err
	}

	s.logger.Info("Catalog seeded", slog.Int("products", len(seeded)))

	return nil
}

func (s *catalogService) Add(ctx context.Context, input usecase.NewProduct) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	if name == "" || category == "" || input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and category are required, price must be >= 0")
	}

	product := &entity.Product{
		ID:        uuid.NewString(),
		Name:      name,
		Size:      strings.TrimSpace(input.Size),
		Price:     input.Price,
		Category:  category,
		CreatedAt: time.Now(),
	}

	if err := s.catalogRepo.Append(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *catalogService) Remove(ctx context.Context, id string) error {
	return s.catalogRepo.Remove(ctx, id)
}

// Groups renders the catalog: a synthetic Favourites group first when the
// usage ranking is non-empty, then categories sorted alphabetically. The
// ranking is recomputed on every call so it always reflects the latest
// history and current catalog membership.
func (s *catalogService) Groups(ctx context.Context, search string) ([]*usecase.ProductGroup, error) {
	products, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	favourites, err := s.favourites.Top(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]*usecase.ProductGroup, 0, 1)
	if len(favourites) > 0 {
		groups = append(groups, &usecase.ProductGroup{
			Name:     usecase.FavouritesGroupName,
			Products: toViews(favourites, search),
		})
	}

	byCategory := make(map[string][]*entity.Product)
	categories := make([]string, 0)
	for _, p := range products {
		if _, ok := byCategory[p.Category]; !ok {
			categories = append(categories, p.Category)
		}
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}
	sort.Strings(categories)

	for _, category := range categories {
		groups = append(groups, &usecase.ProductGroup{
			Name:     category,
			Products: toViews(byCategory[category], search),
		})
	}

	return groups, nil
}

// toViews marks every product with its visibility under the search term.
// Hidden products stay in the group.
func toViews(products []*entity.Product, search string) []usecase.ProductView {
	views := make([]usecase.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, usecase.ProductView{
			Product: p,
			Visible: p.Matches(search),
		})
	}

	return views
}
