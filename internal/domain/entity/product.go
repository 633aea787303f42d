// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Product represents a purchasable catalog item.
// Products are immutable once created: they are either imported from the
// seed catalog or added by the user, and can only be removed afterwards.
type Product struct {
	ID        string    `json:"id"`         // Unique, stable identifier. Seed products keep their seed ids; user-added products get a random UUID.
	Name      string    `json:"name"`       // Display name, e.g. "Milk".
	Size      string    `json:"size"`       // Pack size, e.g. "500ml".
	Price     float64   `json:"price"`      // Unit price, >= 0.
	Category  string    `json:"category"`   // Grouping key for the rendered list.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the product entered the catalog.
}

// DisplayName composes the label shown on a product card.
func (p *Product) DisplayName() string {
	return p.Name + " - " + p.Size
}

// Matches reports whether the product's display name contains the search
// term as a case-insensitive substring. An empty term matches everything.
func (p *Product) Matches(term string) bool {
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.DisplayName()), strings.ToLower(term))
}
