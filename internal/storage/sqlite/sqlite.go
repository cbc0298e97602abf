// Package sqlite persists collections as single-row JSON documents in a
// sqlite database. It offers the same whole-document semantics as the
// jsonfile backend, with the replace made atomic by an upsert inside a
// transaction instead of a file rename.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/salamtec/inventory-service/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    name       TEXT PRIMARY KEY,
    body       BLOB NOT NULL,
    updated_at TIMESTAMP NOT NULL
);`

type Store struct {
	db    *sqlx.DB
	locks *storage.CollectionLocks
}

func New(path string, lockTimeout time.Duration) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One writer at a time; the collection locks serialize writers anyway.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}
	return &Store{
		db:    db,
		locks: storage.NewCollectionLocks(lockTimeout),
	}, nil
}

func (s *Store) Load(ctx context.Context, collection string, v any) error {
	var body []byte
	err := s.db.GetContext(ctx, &body, `SELECT body FROM documents WHERE name = ?`, collection)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("read collection %s: %w", collection, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode collection %s: %w", collection, err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, collection string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write for collection %s: %w", collection, err)
	}
	_, err = tx.ExecContext(ctx, `
        INSERT INTO documents (name, body, updated_at) VALUES (?, ?, ?)
        ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		collection, body, time.Now())
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit collection %s: %w", collection, err)
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

func (s *Store) Close() error {
	return s.db.Close()
}
