package repository

import (
	"context"

	"github.com/salamtec/inventory-service/internal/model"
	"github.com/salamtec/inventory-service/internal/storage"
)

// DocRepository keeps the products collection in a document store.
type DocRepository struct {
	store storage.Store
}

func NewDocRepository(store storage.Store) *DocRepository {
	return &DocRepository{store: store}
}

func (r *DocRepository) LoadAll(ctx context.Context) (*model.ProductCollection, error) {
	col := &model.ProductCollection{Products: []*model.Product{}}
	if err := r.store.Load(ctx, storage.CollectionProducts, col); err != nil {
		return nil, err
	}
	return col, nil
}

func (r *DocRepository) Mutate(ctx context.Context, fn func(col *model.ProductCollection) error) error {
	return r.store.Update(ctx, storage.CollectionProducts, func(ctx context.Context) error {
		col := &model.ProductCollection{Products: []*model.Product{}}
		if err := r.store.Load(ctx, storage.CollectionProducts, col); err != nil {
			return err
		}
		if err := fn(col); err != nil {
			return err
		}
		return r.store.Save(ctx, storage.CollectionProducts, col)
	})
}
