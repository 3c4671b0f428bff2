package analytics

import (
	"time"

	"github.com/frahmantamala/expense-tracker/internal/expense"
	"github.com/shopspring/decimal"
)

type DailyTotal struct {
	Label  string          `json:"label"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// WeekStart returns local midnight of the most recent Sunday on or before now.
func WeekStart(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
}

// WeeklyHistogram returns seven buckets, Sunday through Saturday, for the week
// containing now. Days after today are present and usually zero.
func WeeklyHistogram(expenses []expense.Expense, now time.Time) []DailyTotal {
	loc := now.Location()
	start := WeekStart(now)

	days := make([]DailyTotal, 7)
	for i := range days {
		day := start.AddDate(0, 0, i)
		days[i] = DailyTotal{
			Label:  day.Weekday().String()[:3],
			Date:   day,
			Amount: decimal.Zero,
		}
	}

	for _, e := range expenses {
		date := e.Date.In(loc)
		for i := range days {
			if sameDay(date, days[i].Date) {
				days[i].Amount = days[i].Amount.Add(e.Amount)
				break
			}
		}
	}

	return days
}

// CategoryTotals sums every expense per category, following the order of
// categories. Categories without expenses are included with a zero total;
// expenses whose category is not in the set are ignored.
func CategoryTotals(expenses []expense.Expense, categories []string) []CategoryTotal {
	sums := make(map[string]decimal.Decimal, len(categories))
	for _, e := range expenses {
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}

	out := make([]CategoryTotal, 0, len(categories))
	for _, name := range categories {
		amount, ok := sums[name]
		if !ok {
			amount = decimal.Zero
		}
		out = append(out, CategoryTotal{Category: name, Amount: amount})
	}
	return out
}
