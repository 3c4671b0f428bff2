package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/expense-tracker/internal/export"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start background workers",
	Long:  `Start long-running background workers such as scheduled export snapshots.`,
}

var exportWorkerCmd = &cobra.Command{
	Use:   "export",
	Short: "Write export snapshots on a cron schedule",
	Long:  `Reload the store and write a timestamped export file on every tick of the configured cron schedule.`,
	Run: func(cmd *cobra.Command, args []string) {
		startExportWorker()
	},
}

var (
	workerSchedule string
	workerFormat   string
	workerDir      string
	workerRunNow   bool
)

func startExportWorker() {
	deps, err := initializeDependencies(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}
	defer deps.Close()

	lg := deps.Logger
	schedule := getStringFlag(workerSchedule, deps.Config.Export.Schedule)
	format := getStringFlag(workerFormat, deps.Config.Export.Format)
	dir := getStringFlag(workerDir, deps.Config.Export.Dir)

	service := export.NewService(deps.Repo, lg)
	snapshot := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		// pick up writes and resets made by other processes since the last tick
		deps.Repo.Reload(ctx)
		path, err := service.WriteFile(ctx, dir, format)
		if err != nil {
			lg.Error("scheduled export failed", "error", err)
			return
		}
		lg.Info("scheduled export written", "path", path)
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(schedule, snapshot); err != nil {
		lg.Error("invalid export schedule", "schedule", schedule, "error", err)
		return
	}

	lg.Info("starting export worker",
		"schedule", schedule,
		"format", format,
		"dir", dir)

	if workerRunNow {
		snapshot()
	}
	scheduler.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	lg.Info("export worker is running. Press Ctrl+C to stop.")

	// wait for shutdown signal
	sig := <-sigChan
	lg.Info("received signal, shutting down export worker", "signal", sig)

	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
		lg.Info("export worker shutdown complete")
	case <-time.After(30 * time.Second):
		lg.Warn("shutdown timeout reached, forcing exit")
	}
}

func init() {
	exportWorkerCmd.Flags().StringVar(&workerSchedule, "schedule", "", "Cron schedule, e.g. \"@daily\" or \"0 2 * * *\" (overrides config)")
	exportWorkerCmd.Flags().StringVar(&workerFormat, "format", "", "csv or xlsx (overrides config)")
	exportWorkerCmd.Flags().StringVar(&workerDir, "dir", "", "Output directory (overrides config)")
	exportWorkerCmd.Flags().BoolVar(&workerRunNow, "now", false, "Write one snapshot immediately on start")

	workerCmd.AddCommand(exportWorkerCmd)
}
