package impl

import (
	"context"
	"sync"

	"orderpad/internal/domain/entity"
	domainerrors "orderpad/internal/domain/errors"
	"orderpad/internal/domain/repository"
	"orderpad/internal/usecase"

	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. The draft map is
// the single source of truth for quantities; the mutex only serializes
// overlapping HTTP requests, there is no multi-user coordination.
type orderService struct {
	mu    sync.RWMutex
	draft map[string]int

	catalogRepo repository.CatalogRepository
	historyRepo repository.HistoryRepository
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	HistoryRepo repository.HistoryRepository
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		draft:       make(map[string]int),
		catalogRepo: params.CatalogRepo,
		historyRepo: params.HistoryRepo,
	}
}

func (s *orderService) SetQuantity(id string, quantity int) int {
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store(id, quantity)

	return quantity
}

func (s *orderService) Increment(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	quantity := s.draft[id] + 1
	s.store(id, quantity)

	return quantity
}

func (s *orderService) Decrement(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	quantity := s.draft[id]
	if quantity == 0 {
		return 0
	}

	quantity--
	s.store(id, quantity)

	return quantity
}

// store keeps the draft map sparse: zero quantities are the implicit
// default for every product.
func (s *orderService) store(id string, quantity int) {
	if quantity == 0 {
		delete(s.draft, id)

		return
	}
	s.draft[id] = quantity
}

func (s *orderService) Quantities() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quantities := make(map[string]int, len(s.draft))
	for id, quantity := range s.draft {
		quantities[id] = quantity
	}

	return quantities
}

func (s *orderService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = make(map[string]int)
}

// Total sums quantity * price over catalog products visible under the
// search term. Draft entries whose product left the catalog contribute
// nothing since their price is unknown.
func (s *orderService) Total(ctx context.Context, search string) (float64, error) {
	products, err := s.catalogRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, p := range products {
		if !p.Matches(search) {
			continue
		}
		total += float64(s.draft[p.ID]) * p.Price
	}

	return total, nil
}

// Snapshot materializes the draft in catalog order with snapshotted
// prices. The search filter deliberately does not apply: the saved total
// must always equal the sum over the saved items.
func (s *orderService) Snapshot(ctx context.Context) ([]entity.OrderLine, float64, error) {
	products, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]entity.OrderLine, 0, len(s.draft))
	var total float64
	for _, p := range products {
		quantity := s.draft[p.ID]
		if quantity <= 0 {
			continue
		}
		line := entity.OrderLine{
			ProductID: p.ID,
			Price:     p.Price,
			Quantity:  quantity,
		}
		lines = append(lines, line)
		total += line.Subtotal()
	}

	return lines, total, nil
}

func (s *orderService) LoadLast(ctx context.Context) error {
	entries, err := s.historyRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return domainerrors.ErrHistoryEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = make(map[string]int, len(entries[0].Items))
	for _, item := range entries[0].Items {
		if item.Quantity > 0 {
			s.draft[item.ProductID] = item.Quantity
		}
	}

	return nil
}
