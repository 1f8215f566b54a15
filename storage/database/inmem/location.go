package inmemdb

import (
	"context"

	"github.com/trezcool/eneo/core/catalog"
	"github.com/trezcool/eneo/core/location"
)

type locationRepository struct {
	db *locationTable
}

var _ location.Repository = (*locationRepository)(nil)

func NewLocationRepository(db *DB) location.Repository {
	return &locationRepository{db: db.location}
}

func (repo *locationRepository) LoadTable(ctx context.Context) (catalog.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if len(repo.db.rows) == 0 {
		return nil, location.ErrEmptyRepository
	}
	return location.BuildTable(repo.db.rows), nil
}

func (repo *locationRepository) ReplaceTable(ctx context.Context, t catalog.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := location.FlattenTable(t)

	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.rows = rows
	return nil
}

func (repo *locationRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return len(repo.db.rows), nil
}
