package sqlxrepos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/eneo/core/catalog"
	"github.com/trezcool/eneo/core/location"
	"github.com/trezcool/eneo/tests"
)

func Test_locationRepository(t *testing.T) {
	db := testutil.PrepareDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceTable(ctx, catalog.Table{}))
	_, err := repo.LoadTable(ctx)
	assert.Equal(t, location.ErrEmptyRepository, err)

	require.NoError(t, repo.ReplaceTable(ctx, location.DefaultTable))
	got, err := repo.LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, location.DefaultTable, got)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(location.FlattenTable(location.DefaultTable)), n)

	// the primary key rejects a sector stored twice in one district
	dup := []location.Row{
		{Province: "Kigali City", District: "Gasabo", Sector: "Bumbogo", Position: 0},
	}
	_, err = repo.(*locationRepository).db.NamedExecContext(ctx, insertLocation, dup)
	assert.Error(t, err)

	got, err = repo.LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, location.DefaultTable, got)
}
