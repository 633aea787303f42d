// Package service defines interfaces for external collaborators consumed
// by the use case layer.
package service

import (
	"context"

	"orderpad/internal/domain/entity"
)

// SeedSource delivers the default catalog document used to seed an empty
// catalog. The document format is owned by the source; implementations
// convert it to Product records.
type SeedSource interface {
	Fetch(ctx context.Context) ([]*entity.Product, error)
}
