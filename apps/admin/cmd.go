package main

import (
	"context"
	"database/sql"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/core/location"
	"github.com/trezcool/eneo/storage/database"
	sqlxrepos "github.com/trezcool/eneo/storage/database/sqlx"
)

const pingAttempts = 10

var openDBFunc = openDB // mockable

type commandLine struct {
	conf   *core.Config
	logger core.Logger
	out    io.Writer

	// opened on first use; commands that only read files never touch the database
	db   *sql.DB
	repo location.Repository
}

func openDB(ctx context.Context, conf *core.Config) (*sql.DB, error) {
	db, err := database.Open(conf)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = database.Ping(ctx, db, pingAttempts); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (cli *commandLine) database(ctx context.Context) (*sql.DB, error) {
	if cli.db != nil {
		return cli.db, nil
	}
	db, err := openDBFunc(ctx, cli.conf)
	if err != nil {
		return nil, err
	}
	cli.db = db
	return db, nil
}

func (cli *commandLine) repository(ctx context.Context) (location.Repository, error) {
	if cli.repo != nil {
		return cli.repo, nil
	}
	db, err := cli.database(ctx)
	if err != nil {
		return nil, err
	}
	cli.repo = sqlxrepos.NewLocationRepository(db)
	return cli.repo, nil
}

func (cli *commandLine) close() {
	if cli.db == nil {
		return
	}
	if err := cli.db.Close(); err != nil {
		cli.logger.Error("closing database", err)
	}
	cli.db = nil
}

func (cli *commandLine) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Eneo administration commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		cli.migrateCmd(),
		cli.seedCmd(),
		cli.checkCmd(),
		cli.lookupCmd(),
	)
	return root
}

// run executes the command line; args[0] is the program name.
func (cli *commandLine) run(args []string) error {
	root := cli.rootCmd()
	root.SetArgs(args[1:])
	root.SetOut(cli.out)
	root.SetErr(cli.out)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	return root.ExecuteContext(ctx)
}
