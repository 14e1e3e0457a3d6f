// Package jsonfile stores each key as a standalone JSON document on disk.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/colonyops/passport/internal/core/kv"
)

const fileExt = ".json"

// KVStore implements kv.KV with one <key>.json file per key. The file body is
// the value itself so documents stay hand-editable.
type KVStore struct {
	dir string
	mu  sync.RWMutex
}

var _ kv.KV = (*KVStore)(nil)

// NewKVStore creates a store rooted at dir. The directory is created lazily.
func NewKVStore(dir string) *KVStore {
	return &KVStore{dir: dir}
}

// Dir is the directory holding the key files.
func (s *KVStore) Dir() string { return s.dir }

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

func (s *KVStore) Set(_ context.Context, key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("kv set %q marshal: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Has(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.path(key))
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("kv has %q: %w", key, err)
	}
}

func (s *KVStore) ListKeys(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("kv list keys: %w", err)
	}

	keys := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		keys = append(keys, keyFromFilename(e.Name()))
	}
	slices.Sort(keys)
	return keys, nil
}

// GetRaw reads the key file. An empty file reads as JSON null. Creation time
// is not tracked on disk, so both timestamps report the modification time.
func (s *KVStore) GetRaw(_ context.Context, key string) (kv.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.path(key)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return kv.Entry{}, fmt.Errorf("kv get %q: %w", key, kv.ErrNotFound)
		}
		return kv.Entry{}, fmt.Errorf("kv get %q: %w", key, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return kv.Entry{}, fmt.Errorf("kv get %q: %w", key, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		data = []byte("null")
	}

	return kv.Entry{
		Key:       key,
		Value:     json.RawMessage(data),
		CreatedAt: info.ModTime(),
		UpdatedAt: info.ModTime(),
	}, nil
}

func (s *KVStore) path(key string) string {
	return filepath.Join(s.dir, filenameForKey(key))
}

// Keys containing "/" are stored with "_" so they stay inside dir.
func filenameForKey(key string) string {
	return strings.ReplaceAll(key, "/", "_") + fileExt
}

func keyFromFilename(name string) string {
	return strings.ReplaceAll(strings.TrimSuffix(name, fileExt), "_", "/")
}
