package doctor

import (
	"context"
	"fmt"

	"github.com/colonyops/passport/internal/core/kv"
)

// SchemaReporter is implemented by backends with versioned schemas.
type SchemaReporter interface {
	PendingMigrations(ctx context.Context) (int, error)
}

// StorageCheck verifies the configured backend answers and its schema is current.
type StorageCheck struct {
	backend string
	store   kv.KV
	schema  SchemaReporter
}

// NewStorageCheck creates a storage check. schema may be nil.
func NewStorageCheck(backend string, store kv.KV, schema SchemaReporter) *StorageCheck {
	return &StorageCheck{backend: backend, store: store, schema: schema}
}

func (c *StorageCheck) Name() string {
	return "Storage"
}

func (c *StorageCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	keys, err := c.store.ListKeys(ctx)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  c.backend,
			Status: StatusFail,
			Detail: fmt.Sprintf("cannot list keys: %v", err),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  c.backend,
		Status: StatusPass,
		Detail: fmt.Sprintf("%d keys stored", len(keys)),
	})

	if c.schema == nil {
		return result
	}

	pending, err := c.schema.PendingMigrations(ctx)
	switch {
	case err != nil:
		result.Items = append(result.Items, CheckItem{
			Label:  "schema",
			Status: StatusFail,
			Detail: err.Error(),
		})
	case pending > 0:
		result.Items = append(result.Items, CheckItem{
			Label:  "schema",
			Status: StatusWarn,
			Detail: fmt.Sprintf("%d pending migrations; they apply on next open", pending),
		})
	default:
		result.Items = append(result.Items, CheckItem{
			Label:  "schema",
			Status: StatusPass,
			Detail: "up to date",
		})
	}

	return result
}
