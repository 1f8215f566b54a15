package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/storage/database"
)

// PrepareDB opens the configured test database and migrates it.
// The test is skipped when no database is reachable.
func PrepareDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	conf := core.NewConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := database.CreateIfNotExist(ctx, conf); err != nil {
		t.Skipf("database unavailable: %v", err)
	}
	db, err := database.Open(conf)
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.Migrate(ctx, db); err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	return db
}
