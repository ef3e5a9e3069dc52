// Package storage defines the key-value blob gateway the repositories
// persist through. Values are JSON documents; the gateway itself carries
// no business logic.
//
// Two persistence domains exist at runtime: a durable one for the user and
// post tables (bbolt or sqlite, per configuration) and a volatile one for
// the session token (memory).
package storage

import (
	"context"
	"encoding/json"
)

// Gateway is a key-value blob store with JSON payloads.
//
// Load returns common.ErrNotFound when the key is absent. Save marshals
// value to JSON and overwrites any prior payload for the key. Remove is a
// no-op for absent keys.
type Gateway interface {
	Load(ctx context.Context, key string) (json.RawMessage, error)
	Save(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
	Close() error
}
