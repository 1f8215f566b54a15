package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/eneo/core/catalog"
	"github.com/trezcool/eneo/core/location"
)

const (
	selectLocations = `SELECT province, district, sector, position FROM location ORDER BY province, district, position`
	insertLocation  = `INSERT INTO location (province, district, sector, position) VALUES (:province, :district, :sector, :position)`
	deleteLocations = `DELETE FROM location`
	countLocations  = `SELECT COUNT(*) FROM location`

	insertBatchSize = 500
)

type locationRepository struct {
	db *sqlx.DB
}

var _ location.Repository = (*locationRepository)(nil)

func NewLocationRepository(db *sql.DB) location.Repository {
	return &locationRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo *locationRepository) LoadTable(ctx context.Context) (catalog.Table, error) {
	var rows []location.Row
	if err := repo.db.SelectContext(ctx, &rows, selectLocations); err != nil {
		return nil, errors.Wrap(err, "selecting locations")
	}
	if len(rows) == 0 {
		return nil, location.ErrEmptyRepository
	}
	return location.BuildTable(rows), nil
}

func (repo *locationRepository) ReplaceTable(ctx context.Context, t catalog.Table) (err error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteLocations); err != nil {
		return errors.Wrap(err, "clearing locations")
	}

	rows := location.FlattenTable(t)
	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		if _, err = tx.NamedExecContext(ctx, insertLocation, rows[start:end]); err != nil {
			return errors.Wrap(err, "inserting locations")
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "committing locations")
	}
	return nil
}

func (repo *locationRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := repo.db.GetContext(ctx, &n, countLocations); err != nil {
		return 0, errors.Wrap(err, "counting locations")
	}
	return n, nil
}
