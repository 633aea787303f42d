// Package usecase defines the interfaces of the application's business
// logic.
package usecase

import (
	"context"

	"orderpad/internal/domain/entity"
)

// FavouritesGroupName labels the synthetic group prepended to the
// rendered catalog when the usage ranking is non-empty.
const FavouritesGroupName = "Favourites"

// NewProduct carries user input for a custom catalog product.
type NewProduct struct {
	Name     string  `json:"name"`
	Size     string  `json:"size"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// ProductView is one product as rendered in a group. Hidden products stay
// in the payload; the search filter hides, it does not remove.
type ProductView struct {
	Product *entity.Product `json:"product"`
	Visible bool            `json:"visible"`
}

// ProductGroup is one collapsible section of the rendered catalog.
type ProductGroup struct {
	Name     string        `json:"name"`
	Products []ProductView `json:"products"`
}

// CatalogUsecase defines the interface for catalog management use cases
type CatalogUsecase interface {
	// Load seeds the catalog from the configured source when the
	// persisted catalog is absent or empty. Seed failure is non-fatal:
	// it is logged and the catalog stays empty.
	Load(ctx context.Context) error

	// Add creates a product with a fresh unique id and persists it.
	Add(ctx context.Context, input NewProduct) (*entity.Product, error)

	// Remove deletes a product by id; unknown ids are a no-op. History
	// entries referencing the id are left untouched.
	Remove(ctx context.Context, id string) error

	// Groups returns the rendered grouping: a Favourites group first
	// when non-empty, then categories sorted alphabetically. Visibility
	// is derived from the search term, recomputed on every call.
	Groups(ctx context.Context, search string) ([]*ProductGroup, error)
}
