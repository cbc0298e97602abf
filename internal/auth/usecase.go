package auth

import (
	"context"
	"errors"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UseCase interface {
	// Register creates an account with role "user". Admin accounts are
	// seeded out of band in the users document.
	Register(ctx context.Context, username, password string) error

	// Login verifies credentials and returns a session token.
	Login(ctx context.Context, username, password string) (string, error)
}
