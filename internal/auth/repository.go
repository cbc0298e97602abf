package auth

import (
	"context"

	"github.com/salamtec/inventory-service/internal/model"
)

type Repository interface {
	// GetByUsername returns nil, nil when no such account exists.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// Create adds an account inside the users collection's critical
	// section; the uniqueness check and the write are one atomic unit.
	// Fails with ErrUsernameTaken on a duplicate.
	Create(ctx context.Context, user model.User) error
}
