package notification

import (
	"context"

	"github.com/salamtec/inventory-service/internal/model"
)

type Repository interface {
	// Append adds one notification inside the collection's critical section.
	Append(ctx context.Context, n model.Notification) error

	// LoadAll returns the stored order (oldest first), without a lock.
	LoadAll(ctx context.Context) ([]model.Notification, error)

	// Clear atomically replaces the collection with an empty one.
	Clear(ctx context.Context) error
}
