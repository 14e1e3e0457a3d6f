package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/colonyops/passport/internal/core/kv"
	"github.com/colonyops/passport/internal/data/db"
)

// KVStore implements kv.KV using SQLite.
type KVStore struct {
	db *db.DB
}

var (
	_ kv.KV      = (*KVStore)(nil)
	_ kv.Batcher = (*KVStore)(nil)
)

// NewKVStore creates a new SQLite-backed KV store.
func NewKVStore(db *db.DB) *KVStore {
	return &KVStore{db: db}
}

const (
	busyRetries = 3
	busyBackoff = 50 * time.Millisecond
)

const (
	kvGetSQL    = `SELECT key, value, created_at, updated_at FROM kv_store WHERE key = ?`
	kvHasSQL    = `SELECT COUNT(*) FROM kv_store WHERE key = ?`
	kvDeleteSQL = `DELETE FROM kv_store WHERE key = ?`
	kvKeysSQL   = `SELECT key FROM kv_store ORDER BY key`
	kvSetSQL    = `
		INSERT INTO kv_store (key, value, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

// Get retrieves and deserializes a value by key.
// Returns an error wrapping kv.ErrNotFound if the key does not exist.
func (s *KVStore) Get(ctx context.Context, key string, dest any) error {
	entry, err := s.GetRaw(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return fmt.Errorf("kv get %q unmarshal: %w", key, err)
	}

	return nil
}

// Set stores a value, keeping the original creation time on overwrite.
func (s *KVStore) Set(ctx context.Context, key string, value any) error {
	return s.SetMany(ctx, kv.Pair{Key: key, Value: value})
}

// SetMany stores every pair in a single transaction. Nothing is written when
// any value fails to marshal or any insert fails.
func (s *KVStore) SetMany(ctx context.Context, pairs ...kv.Pair) error {
	values := make([][]byte, len(pairs))
	for i, p := range pairs {
		data, err := json.Marshal(p.Value)
		if err != nil {
			return fmt.Errorf("kv set %q marshal: %w", p.Key, err)
		}
		values[i] = data
	}

	now := time.Now().UnixNano()
	var failed string
	write := func(tx *sql.Tx) error {
		for i, p := range pairs {
			if _, err := tx.ExecContext(ctx, kvSetSQL, p.Key, values[i], now, now); err != nil {
				failed = p.Key
				return err
			}
		}
		return nil
	}

	var err error
	for attempt := 1; ; attempt++ {
		err = s.db.WithTx(ctx, write)
		if err == nil || !IsBusyError(err) || attempt == busyRetries {
			break
		}
		time.Sleep(time.Duration(attempt) * busyBackoff)
	}
	if err != nil {
		if failed == "" && len(pairs) > 0 {
			failed = pairs[0].Key
		}
		return fmt.Errorf("kv set %q: %w", failed, err)
	}

	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Conn().ExecContext(ctx, kvDeleteSQL, key); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

// Has returns whether a key exists.
func (s *KVStore) Has(ctx context.Context, key string) (bool, error) {
	var count int
	if err := s.db.Conn().QueryRowContext(ctx, kvHasSQL, key).Scan(&count); err != nil {
		return false, fmt.Errorf("kv has %q: %w", key, err)
	}
	return count > 0, nil
}

// ListKeys returns all keys in sorted order.
func (s *KVStore) ListKeys(ctx context.Context) ([]string, error) {
	rows, err := s.db.Conn().QueryContext(ctx, kvKeysSQL)
	if err != nil {
		return nil, fmt.Errorf("kv list keys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("kv list keys scan: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// GetRaw retrieves a raw KV entry with metadata.
// Returns an error wrapping kv.ErrNotFound if the key does not exist.
func (s *KVStore) GetRaw(ctx context.Context, key string) (kv.Entry, error) {
	var (
		entry     kv.Entry
		value     []byte
		createdAt int64
		updatedAt int64
	)

	err := s.db.Conn().QueryRowContext(ctx, kvGetSQL, key).Scan(&entry.Key, &value, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kv.Entry{}, fmt.Errorf("kv get %q: %w", key, kv.ErrNotFound)
		}
		return kv.Entry{}, fmt.Errorf("kv get %q: %w", key, err)
	}

	entry.Value = json.RawMessage(value)
	entry.CreatedAt = time.Unix(0, createdAt)
	entry.UpdatedAt = time.Unix(0, updatedAt)
	return entry, nil
}
