package localstore

import (
	"context"

	"orderpad/internal/domain/entity"
	"orderpad/internal/domain/repository"

	"github.com/google/uuid"
)

// historyRepository implements repository.HistoryRepository over the
// local store's history key. Entries are stored most-recent-first.
type historyRepository struct {
	store *Store
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(store *Store) repository.HistoryRepository {
	return &historyRepository{store: store}
}

func (r *historyRepository) List(ctx context.Context) ([]*entity.HistoryEntry, error) {
	var entries []*entity.HistoryEntry
	if _, err := r.store.readJSON(ctx, historyKey, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *historyRepository) Find(ctx context.Context, id uuid.UUID) (*entity.HistoryEntry, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}

	return nil, repository.ErrEntryNotFound
}

func (r *historyRepository) Prepend(ctx context.Context, entry *entity.HistoryEntry, limit int) error {
	entries, err := r.List(ctx)
	if err != nil {
		return err
	}

	entries = append([]*entity.HistoryEntry{entry}, entries...)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return r.store.writeJSON(ctx, historyKey, entries)
}

func (r *historyRepository) Delete(ctx context.Context, ids []uuid.UUID) (int, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return 0, err
	}

	selected := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	kept := make([]*entity.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := selected[e.ID]; !ok {
			kept = append(kept, e)
		}
	}

	removed := len(entries) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := r.store.writeJSON(ctx, historyKey, kept); err != nil {
		return 0, err
	}

	return removed, nil
}
