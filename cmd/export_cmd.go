package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtroode/usersync/internal/model"
	"github.com/dtroode/usersync/internal/service"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:       "export {users|pets}",
		Short:     "Export a table to a new delimited file",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"users", "pets"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, cleanup, err := setup(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			exporter := service.NewExporter(a.users, a.pets, a.archive, a.logger)

			start := time.Now()
			var summary *model.ExportSummary
			switch args[0] {
			case "users":
				summary, err = exporter.ExportUsers(ctx, output)
			case "pets":
				summary, err = exporter.ExportPets(ctx, output)
			}
			if err != nil {
				return coded(err)
			}

			a.logger.Info("export finished", "table", args[0], "path", summary.Path, "rows", summary.Rows, "duration", time.Since(start).String())
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d rows to %s\n", summary.Rows, summary.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Path of the file to create (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
