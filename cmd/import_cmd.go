package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtroode/usersync/internal/model"
	"github.com/dtroode/usersync/internal/service"
)

func newImportCmd() *cobra.Command {
	var (
		input       string
		fromArchive bool
	)

	cmd := &cobra.Command{
		Use:       "import {users|pets}",
		Short:     "Import a delimited file into a table",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"users", "pets"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, cleanup, err := setup(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			importer := service.NewImporter(a.users, a.pets, a.archive, a.logger)

			if fromArchive {
				if err := importer.FetchFromArchive(ctx, input); err != nil {
					return coded(err)
				}
			}

			start := time.Now()
			var summary *model.ImportSummary
			switch args[0] {
			case "users":
				summary, err = importer.ImportUsers(ctx, input)
			case "pets":
				summary, err = importer.ImportPets(ctx, input)
			}
			if err != nil {
				return coded(err)
			}

			a.logger.Info("import finished", "table", args[0], "path", summary.Path, "read", summary.Read, "updated", summary.Updated, "inserted", summary.Inserted, "duration", time.Since(start).String())
			fmt.Fprintf(cmd.OutOrStdout(), "read %d rows: %d updated, %d inserted\n", summary.Read, summary.Updated, summary.Inserted)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path of the file to load (required)")
	cmd.Flags().BoolVar(&fromArchive, "from-archive", false, "Fetch the file from the exchange archive first")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
