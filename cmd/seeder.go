package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frahmantamala/expense-tracker/internal/expense"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type sampleExpense struct {
	amount   string
	category string
	note     string
	daysAgo  int
	hour     int
}

var sampleExpenses = []sampleExpense{
	{"4.50", "Food", "Coffee run", 0, 8},
	{"12.00", "Transport", "Taxi to office", 0, 9},
	{"38.20", "Shopping", "Groceries", 1, 18},
	{"120.00", "Bills", "Electricity", 3, 10},
	{"9.75", "Food", "Lunch with team", 4, 13},
	{"2.80", "Transport", "Bus ticket", 6, 7},
	{"65.00", "Other", "Birthday gift", 9, 16},
	{"850.00", "Bills", "Rent", 20, 9},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the store with sample expenses",
	Long:  `Seed the configured store with sample expenses spread over the last few weeks, for development and testing purposes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		deps, err := initializeDependencies(ctx)
		if err != nil {
			return fmt.Errorf("failed to init dependencies: %w", err)
		}
		defer deps.Close()

		if clearData {
			if !deps.Repo.ClearAll(ctx) {
				return errors.New("failed to clear existing data")
			}
			deps.Logger.Info("existing data cleared")
		}

		service := expense.NewService(deps.Repo, deps.Logger)
		now := time.Now()

		// oldest first so the newest ends up at the head of the list
		for i := len(sampleExpenses) - 1; i >= 0; i-- {
			s := sampleExpenses[i]
			day := now.AddDate(0, 0, -s.daysAgo)
			date := time.Date(day.Year(), day.Month(), day.Day(), s.hour, 0, 0, 0, now.Location())
			if date.After(now) {
				date = now
			}

			created, err := service.CreateExpense(ctx, expense.CreateExpenseDTO{
				Amount:   decimal.RequireFromString(s.amount),
				Category: s.category,
				Note:     s.note,
				Date:     &date,
			})
			if err != nil {
				return fmt.Errorf("failed to seed expense %q: %w", s.note, err)
			}
			deps.Logger.Info("seeded expense", "id", created.ID, "note", s.note)
		}

		deps.Logger.Info("seeding complete", "expenses", len(sampleExpenses))
		return nil
	},
}
