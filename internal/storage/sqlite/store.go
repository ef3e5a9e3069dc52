// Package sqlite implements the storage gateway over a local SQLite
// database: a single key/value table holding JSON payloads. Schema is
// managed by goose from embedded migrations.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/olehkhomyk/feedline/internal/common"
	"github.com/olehkhomyk/feedline/internal/dbx"
)

// Store is a SQLite-backed storage gateway.
type Store struct {
	db *sql.DB
}

// Open opens the database at dsn and applies pending migrations.
// The modernc.org/sqlite driver must be registered by the caller
// (blank import), mirroring how the CLI wires it.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate storage db: %w", err)
	}

	return &Store{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "migrations")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load fetches the JSON payload stored under key.
func (s *Store) Load(ctx context.Context, key string) (json.RawMessage, error) {
	var payload json.RawMessage
	err := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load blob[%s]: %w", key, err)
	}
	return payload, nil
}

// Save marshals value and upserts the payload stored under key.
func (s *Store) Save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal blob[%s]: %w", key, err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO blobs (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, payload)
		if err != nil {
			return fmt.Errorf("save blob[%s]: %w", key, err)
		}
		return nil
	})
}

// Remove deletes the payload stored under key, if any.
func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("remove blob[%s]: %w", key, err)
	}
	return nil
}
