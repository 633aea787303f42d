package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderLine is the history-persisted form of one ordered product.
// The product reference is by id value only: if the product is later
// removed from the catalog the reference dangles and the line keeps its
// snapshotted price.
type OrderLine struct {
	ProductID string  `json:"id"`       // Reference to Product.ID at sale time.
	Price     float64 `json:"price"`    // Unit price snapshot at sale time.
	Quantity  int     `json:"quantity"` // Always > 0 in persisted entries.
}

// Subtotal returns the line's contribution to the order total.
func (l OrderLine) Subtotal() float64 {
	return float64(l.Quantity) * l.Price
}

// HistoryEntry is an immutable record of a finalized order.
// Total equals the sum of line subtotals, computed once at save time and
// never recomputed.
type HistoryEntry struct {
	ID    uuid.UUID   `json:"id"`    // Unique key for lookup and deletion.
	Date  time.Time   `json:"date"`  // Save timestamp.
	Total float64     `json:"total"` // Snapshot total, > 0.
	Items []OrderLine `json:"items"` // Ordered lines, all with Quantity > 0.
}
