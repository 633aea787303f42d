package usecase

import (
	"context"

	"orderpad/internal/domain/entity"
)

// OrderUsecase defines the interface for the in-memory order draft: one
// non-negative quantity per product id, the single source of truth for
// the running total and the save payload.
type OrderUsecase interface {
	// SetQuantity sets a product's quantity, clamping negatives to 0,
	// and returns the stored value.
	SetQuantity(id string, quantity int) int

	// Increment bumps a product's quantity by one and returns it.
	Increment(id string) int

	// Decrement lowers a product's quantity by one, a no-op at 0, and
	// returns the stored value.
	Decrement(id string) int

	// Quantities returns a copy of the current draft map.
	Quantities() map[string]int

	// Reset zeroes the whole draft. Resetting an empty draft is a
	// benign no-op.
	Reset()

	// Total derives the running total over products visible under the
	// search term. Full precision; rounding happens at display time.
	Total(ctx context.Context, search string) (float64, error)

	// Snapshot materializes the draft into order lines with prices
	// snapshotted from the current catalog, dropping zero-quantity
	// lines, plus the total over those lines. The search filter does
	// not apply here so the saved total always matches the saved items.
	Snapshot(ctx context.Context) ([]entity.OrderLine, float64, error)

	// LoadLast replaces the draft with the quantities of the most
	// recent history entry. Fails with ErrHistoryEmpty when there is
	// no saved order.
	LoadLast(ctx context.Context) error
}
