// Package bbolt implements the storage gateway over a single-file BoltDB
// database. This is the default durable backend: one bucket, JSON payloads
// keyed by table name.
package bbolt

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/olehkhomyk/feedline/internal/common"
)

const blobBucket = "blobs"

// Store is a BoltDB-backed storage gateway.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the database file at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBucket(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
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
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var payload json.RawMessage
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(blobBucket))
		if bucket == nil {
			return fmt.Errorf("blob bucket is missing")
		}
		v := bucket.Get([]byte(key))
		if v == nil {
			return common.ErrNotFound
		}
		payload = append(json.RawMessage(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Save marshals value and overwrites the payload stored under key.
func (s *Store) Save(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal blob[%s]: %w", key, err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(blobBucket))
		if bucket == nil {
			return fmt.Errorf("blob bucket is missing")
		}
		return bucket.Put([]byte(key), payload)
	})
}

// Remove deletes the payload stored under key, if any.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(blobBucket))
		if bucket == nil {
			return fmt.Errorf("blob bucket is missing")
		}
		return bucket.Delete([]byte(key))
	})
}

func (s *Store) ensureBucket() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(blobBucket))
		if err != nil {
			return fmt.Errorf("create blob bucket: %w", err)
		}
		return nil
	})
}
