// Package storage defines the document-store port: named collections that
// are read and written whole, with exclusive per-collection write locks.
package storage

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Collection names used by the service.
const (
	CollectionProducts      = "inventory_data"
	CollectionNotifications = "notifications"
	CollectionUsers         = "users"
)

// ErrBusy is returned when a collection lock cannot be acquired within the
// configured timeout.
var ErrBusy = errors.New("storage busy, please try again later")

// Store is the persistence port. Collections are independent documents;
// writers to different collections never block each other.
type Store interface {
	// Load reads a whole collection document into v. A missing collection
	// leaves v as passed in, so callers supply the empty document.
	// Load takes no lock; readers see either the previous or the new
	// document, never a partial write.
	Load(ctx context.Context, collection string, v any) error

	// Save atomically replaces a collection document.
	Save(ctx context.Context, collection string, v any) error

	// Update runs fn as the exclusive writer for collection. fn is expected
	// to Load the latest document, apply its change and Save; the lock makes
	// that read-modify-write an isolated critical section. Fails with
	// ErrBusy when the lock is not acquired within the timeout.
	Update(ctx context.Context, collection string, fn func(ctx context.Context) error) error

	Close() error
}

// CollectionLocks hands out one exclusive lock per collection name, with an
// acquisition timeout. Shared by both store backends.
type CollectionLocks struct {
	mu      sync.Mutex
	locks   map[string]chan struct{}
	timeout time.Duration
}

func NewCollectionLocks(timeout time.Duration) *CollectionLocks {
	return &CollectionLocks{
		locks:   make(map[string]chan struct{}),
		timeout: timeout,
	}
}

func (c *CollectionLocks) lockFor(collection string) chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[collection]
	if !ok {
		l = make(chan struct{}, 1)
		c.locks[collection] = l
	}
	return l
}

func (c *CollectionLocks) Acquire(ctx context.Context, collection string) (release func(), err error) {
	l := c.lockFor(collection)
	timer := time.NewTimer(c.timeout)
	defer timer.Stop()
	select {
	case l <- struct{}{}:
		return func() { <-l }, nil
	case <-timer.C:
		return nil, ErrBusy
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
