// Package config handles configuration loading and validation for passport.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names a kv.KV implementation.
type Backend string

// Supported storage backends.
const (
	BackendSQLite   Backend = "sqlite"
	BackendJSONFile Backend = "jsonfile"
	BackendMemory   Backend = "memory"
)

// IsValid reports whether b names a supported backend.
func (b Backend) IsValid() bool {
	switch b {
	case BackendSQLite, BackendJSONFile, BackendMemory:
		return true
	default:
		return false
	}
}

// MaxCityConfirmDelay bounds tui.city_confirm_delay.
const MaxCityConfirmDelay = 5 * time.Second

// Config holds the application configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	TUI      TUIConfig      `yaml:"tui"`
	Report   ReportConfig   `yaml:"report"`
	DataDir  string         `yaml:"-"` // set by caller, not from config file
}

// StorageConfig selects where travel data lives.
type StorageConfig struct {
	Backend Backend `yaml:"backend"`
}

// DatabaseConfig tunes the SQLite backend.
type DatabaseConfig struct {
	BusyTimeout  time.Duration `yaml:"busy_timeout"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	MaxIdleConns int           `yaml:"max_idle_conns"`
}

// TUIConfig holds interactive UI options.
type TUIConfig struct {
	// CityConfirmDelay is how long a submitted city waits before it is added.
	// Zero adds immediately.
	CityConfirmDelay time.Duration `yaml:"city_confirm_delay"`
	// WatchStorage reloads the UI when another process changes stored keys.
	// Only the jsonfile backend emits change events.
	WatchStorage *bool `yaml:"watch_storage"`
	DarkMode     *bool `yaml:"dark_mode"` // initial theme when nothing is stored
}

// ReportConfig controls `passport report`.
type ReportConfig struct {
	WordWrap int    `yaml:"word_wrap"`
	Template string `yaml:"template"` // optional path to a custom markdown template
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	watch := true
	return Config{
		Storage: StorageConfig{Backend: BackendSQLite},
		Database: DatabaseConfig{
			BusyTimeout:  5 * time.Second,
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
		TUI: TUIConfig{
			CityConfirmDelay: 150 * time.Millisecond,
			WatchStorage:     &watch,
		},
		Report: ReportConfig{WordWrap: 80},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// CityConfirmDelay is left alone because zero is meaningful.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.TUI.WatchStorage == nil {
		c.TUI.WatchStorage = defaults.TUI.WatchStorage
	}
	if c.Report.WordWrap == 0 {
		c.Report.WordWrap = defaults.Report.WordWrap
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if !c.Storage.Backend.IsValid() {
		return fmt.Errorf("storage.backend %q is not one of sqlite, jsonfile, memory", c.Storage.Backend)
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be at least 1")
	}

	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database.busy_timeout cannot be negative")
	}

	if c.TUI.CityConfirmDelay < 0 || c.TUI.CityConfirmDelay > MaxCityConfirmDelay {
		return fmt.Errorf("tui.city_confirm_delay must be between 0 and %s", MaxCityConfirmDelay)
	}

	if c.Report.WordWrap < 0 {
		return fmt.Errorf("report.word_wrap cannot be negative")
	}

	return nil
}

// Watch reports whether storage change events should reload the UI.
func (c *Config) Watch() bool {
	return c.TUI.WatchStorage != nil && *c.TUI.WatchStorage
}

// StorageDir returns the directory used by the jsonfile backend.
func (c *Config) StorageDir() string {
	return filepath.Join(c.DataDir, "storage")
}

// LogFile returns the default log file path.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "passport.log")
}
