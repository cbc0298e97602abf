package ledger

import (
	"context"

	"github.com/salamtec/inventory-service/internal/ledger/dto"
	"github.com/salamtec/inventory-service/internal/model"
)

type UseCase interface {
	// AddStock books stock in, creating the product on first sight. The
	// returned product is a snapshot of the state after the mutation.
	AddStock(ctx context.Context, input *dto.AddStockInput) (*model.Product, error)

	// RemoveStock books stock out. Serial-tracked products are driven by an
	// explicit serial list; plain products by a bare quantity.
	RemoveStock(ctx context.Context, input *dto.RemoveStockInput) (*model.Product, error)

	GetProduct(ctx context.Context, name string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]*model.Product, error)
}

// Notifier receives the human-readable trail of successful mutations.
type Notifier interface {
	Push(ctx context.Context, message string) error
}
