package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetConfirmed bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every expense and restore the default categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirmed {
			fmt.Println("This removes all expenses and custom categories. Re-run with --yes to confirm.")
			return nil
		}

		ctx := context.Background()
		deps, err := initializeDependencies(ctx)
		if err != nil {
			return fmt.Errorf("failed to init dependencies: %w", err)
		}
		defer deps.Close()

		if !deps.Repo.ClearAll(ctx) {
			return errors.New("failed to clear data")
		}
		fmt.Println("All data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetConfirmed, "yes", "y", false, "Confirm the reset")
}
