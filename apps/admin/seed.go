package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trezcool/eneo/core/catalog"
	"github.com/trezcool/eneo/core/location"
)

func (cli *commandLine) seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the stored location table with the built-in one, or with the one read from --file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := location.DefaultTable
			if file != "" {
				var err error
				if table, err = location.ReadTableFile(file); err != nil {
					return err
				}
			}

			// never store a table the API would refuse to load
			cat, err := catalog.New(table)
			if err != nil {
				return err
			}

			repo, err := cli.repository(cmd.Context())
			if err != nil {
				return err
			}
			if err = repo.ReplaceTable(cmd.Context(), cat.Table()); err != nil {
				return errors.Wrap(err, "seeding locations")
			}

			count, err := repo.Count(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "counting locations")
			}
			cli.logger.Info("location table seeded", map[string]interface{}{"sectors": count})
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d sectors in %d provinces\n", count, len(cat.Categories()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON location table")
	return cmd
}
