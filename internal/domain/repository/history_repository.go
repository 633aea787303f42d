package repository

import (
	"context"
	"errors"

	"orderpad/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEntryNotFound is returned when a history entry is not found.
var ErrEntryNotFound = errors.New("history entry not found")

// HistoryRepository defines the interface for the order history log.
// Entries are kept most-recent-first; they are never mutated in place.
type HistoryRepository interface {
	// List returns all entries, most recent first. An absent log reads
	// as empty.
	List(ctx context.Context) ([]*entity.HistoryEntry, error)

	// Find resolves a single entry by id, returning ErrEntryNotFound
	// when no entry matches.
	Find(ctx context.Context, id uuid.UUID) (*entity.HistoryEntry, error)

	// Prepend inserts a new entry at the head of the log. When limit is
	// positive the log is pruned to at most limit entries, dropping the
	// oldest.
	Prepend(ctx context.Context, entry *entity.HistoryEntry, limit int) error

	// Delete removes every entry whose id is in ids and reports how many
	// entries were removed. Unknown ids are ignored.
	Delete(ctx context.Context, ids []uuid.UUID) (int, error)
}
