package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"orderpad/config"
	"orderpad/internal/domain/entity"
	domainerrors "orderpad/internal/domain/errors"
	"orderpad/internal/domain/repository"
	"orderpad/internal/errors"
	"orderpad/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// exportDateLayout renders entry timestamps in CSV rows.
const exportDateLayout = "02/01/2006 15:04"

// historyService implements the HistoryUsecase interface.
type historyService struct {
	historyRepo repository.HistoryRepository
	catalogRepo repository.CatalogRepository
	maxEntries  int
	appName     string
	logger      *slog.Logger
}

// HistoryServiceParams holds dependencies for HistoryService, injected by Fx.
type HistoryServiceParams struct {
	fx.In

	HistoryRepo repository.HistoryRepository
	CatalogRepo repository.CatalogRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewHistoryService is the constructor for historyService.
func NewHistoryService(params HistoryServiceParams) usecase.HistoryUsecase {
	return &historyService{
		historyRepo: params.HistoryRepo,
		catalogRepo: params.CatalogRepo,
		maxEntries:  params.Config.History.MaxEntries,
		appName:     params.Config.Export.AppName,
		logger:      params.Logger,
	}
}

// Save finalizes an order. Zero-quantity lines are dropped first; an
// order that is empty after that, or whose total is not positive, is
// rejected without touching the log.
func (s *historyService) Save(ctx context.Context, items []entity.OrderLine, total float64) (*entity.HistoryEntry, error) {
	kept := make([]entity.OrderLine, 0, len(items))
	for _, item := range items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}

	if total <= 0 || len(kept) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	entry := &entity.HistoryEntry{
		ID:    uuid.New(),
		Date:  time.Now(),
		Total: total,
		Items: kept,
	}

	if err := s.historyRepo.Prepend(ctx, entry, s.maxEntries); err != nil {
		return nil, err
	}

	s.logger.Info("Order saved",
		slog.String("entry_id", entry.ID.String()),
		slog.Float64("total", entry.Total),
		slog.Int("items", len(entry.Items)),
	)

	return entry, nil
}

// List returns entries most-recent-first. Bounds are inclusive and use
// local-day boundaries: the start floors to midnight, the end ceils to
// the last millisecond of its day.
func (s *historyService) List(ctx context.Context, start, end *time.Time) ([]*entity.HistoryEntry, error) {
	entries, err := s.historyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if start == nil && end == nil {
		return entries, nil
	}

	var floor, ceil time.Time
	if start != nil {
		floor = dayFloor(*start)
	}
	if end != nil {
		ceil = dayCeil(*end)
	}

	kept := make([]*entity.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if start != nil && e.Date.Before(floor) {
			continue
		}
		if end != nil && e.Date.After(ceil) {
			continue
		}
		kept = append(kept, e)
	}

	return kept, nil
}

func dayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayCeil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func (s *historyService) Get(ctx context.Context, id uuid.UUID) (*entity.HistoryEntry, error) {
	entry, err := s.historyRepo.Find(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, domainerrors.ErrEntryNotFound
		}

		return nil, err
	}

	return entry, nil
}

func (s *historyService) Delete(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, domainerrors.ErrNothingSelected
	}

	removed, err := s.historyRepo.Delete(ctx, ids)
	if err != nil {
		return 0, err
	}

	s.logger.Info("History entries deleted", slog.Int("removed", removed))

	return removed, nil
}

// ExportCSV renders one local month of history, oldest first. Product
// names resolve against the current catalog; lines whose product was
// removed render as Unknown.
func (s *historyService) ExportCSV(ctx context.Context, month, year int) (*usecase.CSVExport, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, domainerrors.ErrInvalidExportFilter
	}

	entries, err := s.historyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		local := e.Date.Local()
		if int(local.Month()) == month && local.Year() == year {
			matched = append(matched, e)
		}
	}
	if len(matched) == 0 {
		return nil, domainerrors.ErrExportNoMatch
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	names, err := s.productNames(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{"Date", "Total Amount", "Products"}); err != nil {
		return nil, errors.Wrap(err, "write csv header")
	}

	for _, e := range matched {
		row := []string{
			e.Date.Local().Format(exportDateLayout),
			fmt.Sprintf("%.2f", e.Total),
			productList(e.Items, names),
		}
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrap(err, "write csv row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "flush csv")
	}

	return &usecase.CSVExport{
		Filename: fmt.Sprintf("%s_History_%d-%d.csv", s.appName, month, year),
		Content:  buf.Bytes(),
	}, nil
}

func (s *historyService) productNames(ctx context.Context) (map[string]string, error) {
	products, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	return names, nil
}

// productList joins an entry's lines as "quantity x name" separated by
// semicolons; the CSV writer quotes the field when needed.
func productList(items []entity.OrderLine, names map[string]string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name, ok := names[item.ProductID]
		if !ok {
			name = "Unknown"
		}
		parts = append(parts, fmt.Sprintf("%d x %s", item.Quantity, name))
	}

	return strings.Join(parts, "; ")
}
