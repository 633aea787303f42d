package impl

import (
	"context"
	"log/slog"

	"orderpad/config"
	"orderpad/internal/domain/entity"
	"orderpad/internal/domain/repository"
	"orderpad/internal/infra/persistence/localstore"
	"orderpad/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// stubSeedSource returns canned products or a canned error.
type stubSeedSource struct {
	products []*entity.Product
	err      error
	calls    int
}

func (s *stubSeedSource) Fetch(ctx context.Context) ([]*entity.Product, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	return s.products, nil
}

// fixtures holds real services over an in-memory store.
type fixtures struct {
	cfg  *config.Config
	seed *stubSeedSource

	catalogRepo    repository.CatalogRepository
	historyRepo    repository.HistoryRepository
	preferenceRepo repository.PreferenceRepository

	catalog    usecase.CatalogUsecase
	order      usecase.OrderUsecase
	history    usecase.HistoryUsecase
	favourites usecase.FavouritesUsecase
	preference usecase.PreferenceUsecase
}

func newFixtures() *fixtures {
	cfg := &config.Config{}
	cfg.History.MaxEntries = 20
	cfg.Favourites.Limit = 5
	cfg.Export.AppName = "OrderPad"
	cfg.Theme.Default = "dark"

	store := localstore.NewMem()
	logger := slog.New(slog.DiscardHandler)
	seed := &stubSeedSource{}

	f := &fixtures{
		cfg:            cfg,
		seed:           seed,
		catalogRepo:    localstore.NewCatalogRepository(store),
		historyRepo:    localstore.NewHistoryRepository(store),
		preferenceRepo: localstore.NewPreferenceRepository(store),
	}

	f.favourites = NewFavouritesService(FavouritesServiceParams{
		HistoryRepo: f.historyRepo,
		CatalogRepo: f.catalogRepo,
		Config:      cfg,
	})
	f.catalog = NewCatalogService(CatalogServiceParams{
		CatalogRepo: f.catalogRepo,
		SeedSource:  seed,
		Favourites:  f.favourites,
		Logger:      logger,
	})
	f.order = NewOrderService(OrderServiceParams{
		CatalogRepo: f.catalogRepo,
		HistoryRepo: f.historyRepo,
	})
	f.history = NewHistoryService(HistoryServiceParams{
		HistoryRepo: f.historyRepo,
		CatalogRepo: f.catalogRepo,
		Config:      cfg,
		Logger:      logger,
	})
	f.preference = NewPreferenceService(PreferenceServiceParams{
		PreferenceRepo: f.preferenceRepo,
		Config:         cfg,
	})

	return f
}

func (f *fixtures) mustAddProduct(ctx context.Context, id, name, size string, price float64, category string) *entity.Product {
	p := &entity.Product{
		ID:       id,
		Name:     name,
		Size:     size,
		Price:    price,
		Category: category,
	}
	if err := f.catalogRepo.Append(ctx, p); err != nil {
		panic(err)
	}

	return p
}
