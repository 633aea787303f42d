package usecase

import (
	"context"

	"orderpad/internal/domain/entity"
)

// FavouritesUsecase defines the interface for the usage ranking derived
// from the order history.
type FavouritesUsecase interface {
	// Top ranks product ids by how many saved orders contain them (once
	// per order regardless of quantity), descending, ties broken by
	// first appearance in the history scan. It returns at most the
	// configured limit, resolved against the live catalog with dangling
	// ids dropped. The ranking is recomputed on every call.
	Top(ctx context.Context) ([]*entity.Product, error)
}
