// Package memory implements the storage gateway in process memory. It backs
// the volatile session domain: contents do not survive a restart and are
// dropped on Close.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/olehkhomyk/feedline/internal/common"
)

// Store is a map-backed storage gateway.
type Store struct {
	mu    sync.RWMutex
	blobs map[string]json.RawMessage
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{blobs: make(map[string]json.RawMessage)}
}

// Load fetches the JSON payload stored under key.
func (s *Store) Load(ctx context.Context, key string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.blobs[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return append(json.RawMessage(nil), payload...), nil
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

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = payload
	return nil
}

// Remove deletes the payload stored under key, if any.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

// Close drops all stored payloads.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs = make(map[string]json.RawMessage)
	return nil
}
