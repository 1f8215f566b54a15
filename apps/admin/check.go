package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trezcool/eneo/core/catalog"
	"github.com/trezcool/eneo/core/location"
)

func (cli *commandLine) checkCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that a location table file can be loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := location.ReadTableFile(file)
			if err != nil {
				return err
			}
			cat, err := catalog.New(table)
			if err != nil {
				return err
			}

			var districts int
			for _, province := range cat.Categories() {
				names, _ := cat.SubcategoriesOf(province)
				districts += len(names)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d provinces, %d districts, %d sectors\n",
				len(cat.Categories()), districts, cat.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON location table")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
