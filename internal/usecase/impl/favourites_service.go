package impl

import (
	"context"
	"sort"

	"orderpad/config"
	"orderpad/internal/domain/entity"
	"orderpad/internal/domain/repository"
	"orderpad/internal/usecase"

	"go.uber.org/fx"
)

// favouritesService implements the FavouritesUsecase interface.
type favouritesService struct {
	historyRepo repository.HistoryRepository
	catalogRepo repository.CatalogRepository
	limit       int
}

// FavouritesServiceParams holds dependencies for FavouritesService, injected by Fx.
type FavouritesServiceParams struct {
	fx.In

	HistoryRepo repository.HistoryRepository
	CatalogRepo repository.CatalogRepository
	Config      *config.Config
}

// NewFavouritesService is the constructor for favouritesService.
func NewFavouritesService(params FavouritesServiceParams) usecase.FavouritesUsecase {
	return &favouritesService{
		historyRepo: params.HistoryRepo,
		catalogRepo: params.CatalogRepo,
		limit:       params.Config.Favourites.Limit,
	}
}

// Top derives the ranking from the full history on every call. An id
// counts once per order regardless of quantity; ties keep the order in
// which ids were first encountered during the scan.
func (s *favouritesService) Top(ctx context.Context) ([]*entity.Product, error) {
	entries, err := s.historyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, entry := range entries {
		seen := make(map[string]struct{}, len(entry.Items))
		for _, item := range entry.Items {
			if _, dup := seen[item.ProductID]; dup {
				continue
			}
			seen[item.ProductID] = struct{}{}

			if _, ok := counts[item.ProductID]; !ok {
				order = append(order, item.ProductID)
			}
			counts[item.ProductID]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	products, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	top := make([]*entity.Product, 0, s.limit)
	for _, id := range order {
		if len(top) == s.limit {
			break
		}
		// Ids whose product left the catalog are dropped from the ranking.
		if p, ok := byID[id]; ok {
			top = append(top, p)
		}
	}

	return top, nil
}
