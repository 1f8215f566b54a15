package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/core/location"
)

func (cli *commandLine) lookupCmd() *cobra.Command {
	catConf := cli.conf.Catalog

	cmd := &cobra.Command{
		Use:   "lookup [PROVINCE [DISTRICT [SECTOR]]]",
		Short: "List provinces, districts of a province, sectors of a district, or check a full address",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var repo location.Repository
			if catConf.Source == core.CatalogSourceDatabase {
				var err error
				if repo, err = cli.repository(cmd.Context()); err != nil {
					return err
				}
			}
			cat, err := location.LoadCatalog(cmd.Context(), catConf, repo, cli.logger)
			if err != nil {
				return err
			}

			for i := range args {
				args[i] = core.CleanString(args[i])
			}

			var names []string
			switch len(args) {
			case 0:
				names = cat.Categories()
			case 1:
				names, err = cat.SubcategoriesOf(args[0])
			case 2:
				names, err = cat.ItemsOf(args[0], args[1])
			case 3:
				if err = cat.Resolve(args[0], args[1], args[2]); err == nil {
					names = []string{"valid"}
				}
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
			return nil
		},
	}
	cmd.Flags().StringVar(&catConf.Source, "source", catConf.Source, "catalog source: builtin, file or database")
	cmd.Flags().StringVarP(&catConf.Path, "file", "f", catConf.Path, "location table file (file source)")
	return cmd
}
