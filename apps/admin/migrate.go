package main

import (
	"github.com/spf13/cobra"

	"github.com/trezcool/eneo/storage/database"
)

var gooseRunFunc = database.RunMigration // mockable

func (cli *commandLine) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate COMMAND [ARGS...]",
		Short: "Run a database migration command (up, up-by-one, up-to, down, down-to, redo, reset, status, version)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := cli.database(cmd.Context())
			if err != nil {
				return err
			}
			return gooseRunFunc(cmd.Context(), db, args[0], args[1:]...)
		},
	}
}
