package passport

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/passport/internal/core/config"
	"github.com/colonyops/passport/internal/core/travel"
	"github.com/colonyops/passport/internal/data/db"
)

func TestOpenBackend(t *testing.T) {
	tests := []struct {
		backend     config.Backend
		wantSchema  bool
		wantWatcher bool
	}{
		{config.BackendSQLite, true, false},
		{config.BackendJSONFile, false, true},
		{config.BackendMemory, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			cfg, err := config.Load("", t.TempDir())
			require.NoError(t, err)
			cfg.Storage.Backend = tt.backend

			b, err := OpenBackend(cfg)
			require.NoError(t, err)
			defer func() { assert.NoError(t, b.Close()) }()

			assert.Equal(t, tt.backend, b.Name)
			assert.Equal(t, tt.wantSchema, b.Schema != nil)
			assert.Equal(t, tt.wantWatcher, b.Watcher != nil)

			ctx := context.Background()
			require.NoError(t, b.Store.Set(ctx, travel.KeyDarkMode, true))
			var dark bool
			require.NoError(t, b.Store.Get(ctx, travel.KeyDarkMode, &dark))
			assert.True(t, dark)
		})
	}
}

func TestOpenBackend_Unknown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.Backend = "etcd"
	_, err := OpenBackend(&cfg)
	require.Error(t, err)
}

func TestOpenBackend_RecoversCorruptDatabase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, db.FileName), bytes.Repeat([]byte("not a database "), 512), 0o644))

	cfg, err := config.Load("", dir)
	require.NoError(t, err)

	b, err := OpenBackend(cfg)
	require.NoError(t, err)
	defer func() { _ = b.Close() }()

	matches, err := filepath.Glob(filepath.Join(dir, db.FileName+".corrupt.*"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
