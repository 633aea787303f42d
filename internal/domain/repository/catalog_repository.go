// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"orderpad/internal/domain/entity"
)

// ErrProductNotFound is returned when a catalog product is not found.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository defines the interface for catalog persistence.
// The catalog is stored as a single document; every mutation rewrites it
// (last write wins, single-process model).
type CatalogRepository interface {
	// List returns all catalog products in stored order. An absent
	// catalog reads as empty.
	List(ctx context.Context) ([]*entity.Product, error)

	// Replace overwrites the whole catalog, used for the one-time seed
	// import.
	Replace(ctx context.Context, products []*entity.Product) error

	// Append adds one product to the end of the catalog and persists.
	Append(ctx context.Context, product *entity.Product) error

	// Remove deletes the product with the given id and persists.
	// Removing an unknown id is a no-op.
	Remove(ctx context.Context, id string) error

	// Find resolves a product by id, returning ErrProductNotFound when
	// the id is not in the live catalog.
	Find(ctx context.Context, id string) (*entity.Product, error)
}
