package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/colonyops/passport/internal/core/kv"
	memkv "github.com/colonyops/passport/pkg/kv"
)

type memEntry struct {
	value     json.RawMessage
	createdAt time.Time
	updatedAt time.Time
}

// MemoryKVStore implements kv.KV in process memory. Nothing survives a restart.
type MemoryKVStore struct {
	data *memkv.Store[string, memEntry]
	now  func() time.Time
}

var (
	_ kv.KV      = (*MemoryKVStore)(nil)
	_ kv.Batcher = (*MemoryKVStore)(nil)
)

// NewMemoryKVStore creates an empty in-memory store.
func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{
		data: memkv.New[string, memEntry](),
		now:  time.Now,
	}
}

func (s *MemoryKVStore) Get(_ context.Context, key string, dest any) error {
	e, ok := s.data.Get(key)
	if !ok {
		return fmt.Errorf("kv get %q: %w", key, kv.ErrNotFound)
	}
	if err := json.Unmarshal(e.value, dest); err != nil {
		return fmt.Errorf("kv get %q unmarshal: %w", key, err)
	}
	return nil
}

func (s *MemoryKVStore) Set(ctx context.Context, key string, value any) error {
	return s.SetMany(ctx, kv.Pair{Key: key, Value: value})
}

// SetMany marshals every value before storing any of them.
func (s *MemoryKVStore) SetMany(_ context.Context, pairs ...kv.Pair) error {
	values := make([]json.RawMessage, len(pairs))
	for i, p := range pairs {
		data, err := json.Marshal(p.Value)
		if err != nil {
			return fmt.Errorf("kv set %q marshal: %w", p.Key, err)
		}
		values[i] = data
	}

	now := s.now()
	for i, p := range pairs {
		s.data.Update(p.Key, func(old memEntry, exists bool) memEntry {
			created := now
			if exists {
				created = old.createdAt
			}
			return memEntry{value: values[i], createdAt: created, updatedAt: now}
		})
	}
	return nil
}

func (s *MemoryKVStore) Delete(_ context.Context, key string) error {
	s.data.Delete(key)
	return nil
}

func (s *MemoryKVStore) Has(_ context.Context, key string) (bool, error) {
	_, ok := s.data.Get(key)
	return ok, nil
}

func (s *MemoryKVStore) ListKeys(context.Context) ([]string, error) {
	return s.data.Keys(), nil
}

func (s *MemoryKVStore) GetRaw(_ context.Context, key string) (kv.Entry, error) {
	e, ok := s.data.Get(key)
	if !ok {
		return kv.Entry{}, fmt.Errorf("kv get %q: %w", key, kv.ErrNotFound)
	}
	return kv.Entry{
		Key:       key,
		Value:     e.value,
		CreatedAt: e.createdAt,
		UpdatedAt: e.updatedAt,
	}, nil
}
