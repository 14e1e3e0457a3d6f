package kv

import (
	"context"
	"errors"
)

// TypedKV provides type-safe access to a single key of a KV store.
type TypedKV[T any] struct {
	store    KV
	key      string
	fallback T
}

// Typed binds a key to a value type. Load returns fallback when the key is absent.
func Typed[T any](store KV, key string, fallback T) *TypedKV[T] {
	return &TypedKV[T]{store: store, key: key, fallback: fallback}
}

// Key returns the bound key.
func (t *TypedKV[T]) Key() string { return t.key }

// Load reads and deserializes the value, falling back when the key is absent.
func (t *TypedKV[T]) Load(ctx context.Context) (T, error) {
	var v T
	if err := t.store.Get(ctx, t.key, &v); err != nil {
		if errors.Is(err, ErrNotFound) {
			return t.fallback, nil
		}
		return v, err
	}
	return v, nil
}

// Save stores the value.
func (t *TypedKV[T]) Save(ctx context.Context, value T) error {
	return t.store.Set(ctx, t.key, value)
}

// Delete removes the key.
func (t *TypedKV[T]) Delete(ctx context.Context) error {
	return t.store.Delete(ctx, t.key)
}

// Exists returns whether the key is stored.
func (t *TypedKV[T]) Exists(ctx context.Context) (bool, error) {
	return t.store.Has(ctx, t.key)
}
