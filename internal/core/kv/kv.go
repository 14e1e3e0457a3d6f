// Package kv defines the persistent key-value surface the travel log is
// stored through. Keys are strings and values are JSON documents.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is wrapped by every backend when a key is absent.
var ErrNotFound = errors.New("kv: key not found")

// Entry represents a raw KV entry with metadata.
type Entry struct {
	Key       string
	Value     json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// KV is the interface for a persistent key-value store.
// Get and GetRaw on a missing key return an error wrapping ErrNotFound.
type KV interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)
	ListKeys(ctx context.Context) ([]string, error)
	GetRaw(ctx context.Context, key string) (Entry, error)
}

// Pair is one key and value written by SetMany.
type Pair struct {
	Key   string
	Value any
}

// Batcher is implemented by stores that write several keys in one atomic step.
type Batcher interface {
	SetMany(ctx context.Context, pairs ...Pair) error
}

// SetMany writes every pair through store. Stores implementing Batcher apply
// all pairs or none; others are written one key at a time in order.
func SetMany(ctx context.Context, store KV, pairs ...Pair) error {
	if b, ok := store.(Batcher); ok {
		return b.SetMany(ctx, pairs...)
	}
	for _, p := range pairs {
		if err := store.Set(ctx, p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// IsNotFound reports whether err means the key does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Event reports that a key changed outside the current process.
type Event struct {
	Key       string
	Timestamp time.Time
}

// Watcher delivers change events for keys matching a glob pattern.
// The returned channel closes when ctx is done or the watcher closes.
type Watcher interface {
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
	Close() error
}
