package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/frahmantamala/expense-tracker/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportDir    string
	exportStdout bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all expenses to a CSV or XLSX file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		deps, err := initializeDependencies(ctx)
		if err != nil {
			return fmt.Errorf("failed to init dependencies: %w", err)
		}
		defer deps.Close()

		format := getStringFlag(exportFormat, deps.Config.Export.Format)
		service := export.NewService(deps.Repo, deps.Logger)

		if exportStdout {
			if err := service.Write(ctx, os.Stdout, format); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			return nil
		}

		path, err := service.WriteFile(ctx, getStringFlag(exportDir, deps.Config.Export.Dir), format)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Println(path)
		return nil
	},
}

func getStringFlag(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "csv or xlsx (overrides config)")
	exportCmd.Flags().StringVarP(&exportDir, "dir", "o", "", "Output directory (overrides config)")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to standard output instead of a file")
}
