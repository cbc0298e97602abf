// Package jsonfile persists each collection as one pretty-printed JSON file,
// replaced atomically via write-to-temp-then-rename. The files are
// byte-compatible with the original deployment's data files.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/salamtec/inventory-service/internal/storage"
)

type Store struct {
	dir   string
	locks *storage.CollectionLocks
}

func New(dir string, lockTimeout time.Duration) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{
		dir:   dir,
		locks: storage.NewCollectionLocks(lockTimeout),
	}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Store) Load(ctx context.Context, collection string, v any) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read collection %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode collection %s: %w", collection, err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}
	path := s.path(collection)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace collection %s: %w", collection, err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, collection string, fn func(ctx context.Context) error) error {
	release, err := s.locks.Acquire(ctx, collection)
	if err != nil {
		return err
	}
	defer release()
	return fn(ctx)
}

func (s *Store) Close() error { return nil }
