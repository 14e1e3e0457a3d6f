package passport

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/passport/internal/core/config"
	"github.com/colonyops/passport/internal/core/doctor"
	"github.com/colonyops/passport/internal/core/kv"
	"github.com/colonyops/passport/internal/data/db"
	"github.com/colonyops/passport/internal/data/stores"
	"github.com/colonyops/passport/internal/store/jsonfile"
)

// Backend is an opened storage backend.
type Backend struct {
	Name    config.Backend
	Store   kv.KV
	Schema  doctor.SchemaReporter // nil without migrations
	Watcher kv.Watcher            // nil when the backend cannot report changes

	closers []func() error
}

// Close releases everything the backend opened.
func (b *Backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i]())
	}
	return errors.Join(errs...)
}

// OpenBackend opens the storage backend selected by cfg. A corrupt SQLite
// database is moved aside and a fresh one created.
func OpenBackend(cfg *config.Config) (*Backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return openSQLite(cfg)
	case config.BackendJSONFile:
		return openJSONFile(cfg)
	case config.BackendMemory:
		return &Backend{Name: config.BackendMemory, Store: stores.NewMemoryKVStore()}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func openSQLite(cfg *config.Config) (*Backend, error) {
	opts := db.OpenOptions{
		BusyTimeout:  cfg.Database.BusyTimeout,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	}

	database, err := db.Open(cfg.DataDir, opts)
	if err != nil && stores.IsCorruptionError(err) {
		log.Warn().Err(err).Msg("database corrupted, moving it aside")
		if rerr := stores.RecoverFromCorruption(cfg.DataDir); rerr != nil {
			return nil, fmt.Errorf("recover database: %w", rerr)
		}
		database, err = db.Open(cfg.DataDir, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Backend{
		Name:    config.BackendSQLite,
		Store:   stores.NewKVStore(database),
		Schema:  database,
		closers: []func() error{database.Close},
	}, nil
}

func openJSONFile(cfg *config.Config) (*Backend, error) {
	store := jsonfile.NewKVStore(cfg.StorageDir())
	b := &Backend{Name: config.BackendJSONFile, Store: store}

	if !cfg.Watch() {
		return b, nil
	}

	watcher, err := jsonfile.NewKeyWatcher(cfg.StorageDir())
	if err != nil {
		return nil, fmt.Errorf("watch storage: %w", err)
	}
	b.Watcher = watcher
	b.closers = append(b.closers, watcher.Close)
	return b, nil
}
