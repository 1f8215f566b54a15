package location

import (
	"context"
	"errors"

	"github.com/trezcool/eneo/core/catalog"
)

var ErrEmptyRepository = errors.New("no location stored")

// Repository persists the location table.
type Repository interface {
	// LoadTable returns the whole stored table; ErrEmptyRepository if nothing is stored.
	LoadTable(ctx context.Context) (catalog.Table, error)
	// ReplaceTable atomically swaps the stored table for t.
	ReplaceTable(ctx context.Context, t catalog.Table) error
	// Count returns the number of stored (province, district, sector) rows.
	Count(ctx context.Context) (int, error)
}
