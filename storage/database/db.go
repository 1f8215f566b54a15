package database

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/fs"
)

const migrationsDir = "migrations"

func init() {
	goose.SetBaseFS(appfs.FS)
}

func open(dbName string, admin bool, conf *core.Config) (*sql.DB, error) {
	user := url.UserPassword(conf.Database.User, conf.Database.Password)
	if admin && conf.Database.AdminUser != "" {
		user = url.UserPassword(conf.Database.AdminUser, conf.Database.AdminPassword)
	}

	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   conf.Database.Engine,
		User:     user,
		Host:     conf.Database.Address(),
		Path:     dbName,
		RawQuery: q.Encode(),
	}
	return sql.Open(conf.Database.Engine, u.String())
}

func Open(conf *core.Config) (*sql.DB, error) {
	return open(conf.Database.Name, false, conf)
}

// Ping waits for the database to be ready. Waits 100ms longer between each attempt.
func Ping(ctx context.Context, db *sql.DB, maxAttempts int) error {
	var err error
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.PingContext(ctx)
		if err == nil {
			break
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "DB ping")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

func exists(ctx context.Context, db *sql.DB, query string, args ...interface{}) (bool, error) {
	var found bool
	err := db.QueryRowContext(ctx, query, args...).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return found, err
}

func createAppUser(ctx context.Context, db *sql.DB, conf *core.Config) error {
	if conf.Database.User == "" {
		return nil
	}

	found, err := exists(ctx, db, "SELECT true FROM pg_roles WHERE rolname = $1", conf.Database.User)
	if err != nil {
		return errors.Wrap(err, "checking app user")
	}
	if !found {
		q := "CREATE USER " + pq.QuoteIdentifier(conf.Database.User) +
			" CREATEDB ENCRYPTED PASSWORD " + pq.QuoteLiteral(conf.Database.Password)
		if _, err = db.ExecContext(ctx, q); err != nil {
			return errors.Wrap(err, "creating app user")
		}
	}
	return nil
}

func createDB(ctx context.Context, db *sql.DB, conf *core.Config) error {
	found, err := exists(ctx, db, "SELECT true FROM pg_database WHERE datname = $1", conf.Database.Name)
	if err != nil {
		return errors.Wrap(err, "checking DB")
	}
	if !found {
		if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(conf.Database.Name)); err != nil {
			return errors.Wrap(err, "creating database")
		}
	}
	return nil
}

// CreateIfNotExist creates the app user (as admin) and the app database (as app user) when missing.
func CreateIfNotExist(ctx context.Context, conf *core.Config) error {
	// connect as admin
	db, err := open("postgres", true, conf)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer func() { _ = db.Close() }()

	if err = Ping(ctx, db, 30); err != nil {
		return errors.Wrap(err, "pinging database")
	}
	if err = createAppUser(ctx, db, conf); err != nil {
		return errors.Wrap(err, "creating app user")
	}

	// create DB as app user
	appDB, err := open("postgres", false, conf)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer func() { _ = appDB.Close() }()

	if err = createDB(ctx, appDB, conf); err != nil {
		return errors.Wrap(err, "creating database")
	}
	return nil
}

// Migrate applies all pending migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	return RunMigration(ctx, db, "up")
}

// RunMigration runs a goose command (up, down, status, redo...) against the embedded migrations.
func RunMigration(ctx context.Context, db *sql.DB, command string, args ...string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	if err := goose.RunContext(ctx, command, db, migrationsDir, args...); err != nil {
		return errors.Wrapf(err, "migrating database (%s)", command)
	}
	return nil
}
