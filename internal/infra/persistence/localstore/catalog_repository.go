package localstore

import (
	"context"

	"orderpad/internal/domain/entity"
	"orderpad/internal/domain/repository"
)

// catalogRepository implements repository.CatalogRepository over the
// local store's catalog key.
type catalogRepository struct {
	store *Store
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(store *Store) repository.CatalogRepository {
	return &catalogRepository{store: store}
}

func (r *catalogRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if _, err := r.store.readJSON(ctx, catalogKey, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *catalogRepository) Replace(ctx context.Context, products []*entity.Product) error {
	if products == nil {
		products = []*entity.Product{}
	}

	return r.store.writeJSON(ctx, catalogKey, products)
}

func (r *catalogRepository) Append(ctx context.Context, product *entity.Product) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}

	return r.Replace(ctx, append(products, product))
}

func (r *catalogRepository) Remove(ctx context.Context, id string) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	// Unknown id: nothing changed, skip the write.
	if len(kept) == len(products) {
		return nil
	}

	return r.Replace(ctx, kept)
}

func (r *catalogRepository) Find(ctx context.Context, id string) (*entity.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, repository.ErrProductNotFound
}
