package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/frahmantamala/expense-tracker/internal/analytics"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print totals, the monthly category breakdown and this week's daily spending",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		deps, err := initializeDependencies(ctx)
		if err != nil {
			return fmt.Errorf("failed to init dependencies: %w", err)
		}
		defer deps.Close()

		service := analytics.NewService(deps.Repo, deps.Logger)
		printSummary(os.Stdout, service.Overview(ctx), service.WeeklyChart(ctx))
		return nil
	},
}

func printSummary(out io.Writer, totals analytics.Totals, days []analytics.DailyTotal) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Today:\t%s\n", totals.TodayTotal.StringFixed(2))
	fmt.Fprintf(w, "This week:\t%s\n", totals.WeekTotal.StringFixed(2))
	fmt.Fprintf(w, "This month:\t%s\n", totals.MonthTotal.StringFixed(2))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Category\tAmount\tShare")
	if len(totals.CategoryBreakdown) == 0 {
		fmt.Fprintln(w, "(no expenses this month)\t\t")
	}
	for _, share := range totals.CategoryBreakdown {
		fmt.Fprintf(w, "%s\t%s\t%s%%\n", share.Category, share.Amount.StringFixed(2), share.Percent)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Day\tDate\tAmount")
	for _, day := range days {
		fmt.Fprintf(w, "%s\t%s\t%s\n", day.Label, day.Date.Format(time.DateOnly), day.Amount.StringFixed(2))
	}
}
