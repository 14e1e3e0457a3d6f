package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load("", dataDir)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, 150*time.Millisecond, cfg.TUI.CityConfirmDelay)
	assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
	assert.True(t, cfg.Watch())
	assert.Equal(t, 80, cfg.Report.WordWrap)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dataDir, "storage"), cfg.StorageDir())
	assert.Equal(t, filepath.Join(dataDir, "passport.log"), cfg.LogFile())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: jsonfile
database:
  max_open_conns: 4
tui:
  city_confirm_delay: 0s
  watch_storage: false
report:
  word_wrap: 100
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, BackendJSONFile, cfg.Storage.Backend)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns, "unset fields keep defaults")
	assert.Equal(t, time.Duration(0), cfg.TUI.CityConfirmDelay, "zero delay is allowed")
	assert.False(t, cfg.Watch())
	assert.Equal(t, 100, cfg.Report.WordWrap)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"unknown backend", "storage:\n  backend: redis\n", "storage.backend"},
		{"negative delay", "tui:\n  city_confirm_delay: -1s\n", "city_confirm_delay"},
		{"huge delay", "tui:\n  city_confirm_delay: 1m\n", "city_confirm_delay"},
		{"negative wrap", "report:\n  word_wrap: -3\n", "word_wrap"},
		{"bad yaml", "storage: [", "parse config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_EmptyDataDir(t *testing.T) {
	cfg := DefaultConfig()
	assert.ErrorContains(t, cfg.Validate(), "data directory")
}

func TestBackend_IsValid(t *testing.T) {
	assert.True(t, BackendMemory.IsValid())
	assert.False(t, Backend("").IsValid())
	assert.False(t, Backend("SQLITE").IsValid())
}
