package notification

import (
	"context"

	"github.com/salamtec/inventory-service/internal/model"
)

type UseCase interface {
	// Push appends a timestamped message. The queue grows without bound;
	// the original system never evicted and neither do we.
	Push(ctx context.Context, message string) error

	// ListAll returns notifications most-recent-first plus the total count.
	ListAll(ctx context.Context) ([]model.Notification, int, error)

	// ClearAll empties the queue. Irreversible.
	ClearAll(ctx context.Context) error
}
