package ledger

import (
	"context"

	"github.com/salamtec/inventory-service/internal/model"
)

type Repository interface {
	// LoadAll returns a snapshot of the products collection without taking
	// the write lock. It may be stale relative to a concurrent writer.
	LoadAll(ctx context.Context) (*model.ProductCollection, error)

	// Mutate runs fn as the exclusive writer of the products collection:
	// the latest persisted document is loaded, fn applies its change, and
	// the document is persisted atomically. If fn returns an error nothing
	// is written and no effect is observable.
	Mutate(ctx context.Context, fn func(col *model.ProductCollection) error) error
}
