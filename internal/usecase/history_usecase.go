package usecase

import (
	"context"
	"time"

	"orderpad/internal/domain/entity"

	"github.com/google/uuid"
)

// CSVExport is a generated export document offered as a file download.
type CSVExport struct {
	Filename string
	Content  []byte
}

// HistoryUsecase defines the interface for the finalized-order log.
type HistoryUsecase interface {
	// Save appends a new entry (most-recent-first) and prunes the log
	// to the configured cap. Rejects with ErrEmptyOrder when total <= 0
	// or items is empty; nothing is persisted on rejection.
	Save(ctx context.Context, items []entity.OrderLine, total float64) (*entity.HistoryEntry, error)

	// List returns entries most-recent-first, optionally bounded by
	// inclusive dates: the start bound floors to local 00:00:00.000,
	// the end bound ceils to local 23:59:59.999.
	List(ctx context.Context, start, end *time.Time) ([]*entity.HistoryEntry, error)

	// Get resolves one entry for the order-details view.
	Get(ctx context.Context, id uuid.UUID) (*entity.HistoryEntry, error)

	// Delete removes all entries matching ids. An empty selection is
	// rejected with ErrNothingSelected; unknown ids are ignored.
	Delete(ctx context.Context, ids []uuid.UUID) (int, error)

	// ExportCSV renders entries of the given local month/year to a CSV
	// document. Rejects with ErrInvalidExportFilter on a malformed
	// filter and ErrExportNoMatch when nothing matches; no partial file
	// is produced.
	ExportCSV(ctx context.Context, month, year int) (*CSVExport, error)
}
