package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtroode/usersync/internal/model"
	"github.com/dtroode/usersync/internal/schema"
	"github.com/dtroode/usersync/internal/service"
)

func newDeleteCmd() *cobra.Command {
	var (
		userID    string
		updatedAt string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user and the user's pets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			token, err := time.Parse(schema.TimestampLayout, updatedAt)
			if err != nil {
				return withCode(exitConfig, fmt.Errorf("invalid --updated-at: %w", err))
			}

			a, cleanup, err := setup(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			deleter := service.NewDeleter(a.users, a.pets, a.logger)

			receipt, err := deleter.Delete(ctx, userID, token)
			if err != nil {
				return coded(err)
			}

			switch receipt.Outcome {
			case model.DeleteAborted:
				fmt.Fprintf(cmd.OutOrStdout(), "delete rejected: %s\n", receipt.Violation)
			case model.DeleteCascadeDeleted:
				fmt.Fprintf(cmd.OutOrStdout(), "user %s deleted\n", receipt.UserID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "Id of the user to delete (required)")
	cmd.Flags().StringVar(&updatedAt, "updated-at", "", "Expected upd_ts of the row, e.g. 2024-01-01T00:00:00 (required)")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("updated-at")

	return cmd
}
