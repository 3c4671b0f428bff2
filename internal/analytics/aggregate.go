// Package analytics derives totals and chart series from an expense list.
// Every function here is pure: the caller supplies the list and the clock.
package analytics

import (
	"time"

	"github.com/frahmantamala/expense-tracker/internal/expense"
	"github.com/shopspring/decimal"
)

const week = 7 * 24 * time.Hour

var hundred = decimal.NewFromInt(100)

type CategoryShare struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	// Percent of the month total, one decimal place ("66.7").
	Percent string `json:"percent"`
}

type Totals struct {
	TodayTotal        decimal.Decimal `json:"today_total"`
	WeekTotal         decimal.Decimal `json:"week_total"`
	MonthTotal        decimal.Decimal `json:"month_total"`
	CategoryBreakdown []CategoryShare `json:"category_breakdown"`
}

// ComputeAggregates sums expenses for the calendar day and month containing
// now and for the trailing seven days ending at now. Calendar fields are read
// in now's location. The breakdown covers the month only and lists categories
// in the order they are first seen.
func ComputeAggregates(expenses []expense.Expense, now time.Time) Totals {
	loc := now.Location()
	totals := Totals{
		TodayTotal:        decimal.Zero,
		WeekTotal:         decimal.Zero,
		MonthTotal:        decimal.Zero,
		CategoryBreakdown: []CategoryShare{},
	}

	var order []string
	byCategory := make(map[string]decimal.Decimal)

	for _, e := range expenses {
		date := e.Date.In(loc)

		if sameDay(date, now) {
			totals.TodayTotal = totals.TodayTotal.Add(e.Amount)
		}

		if age := now.Sub(e.Date); age >= 0 && age < week {
			totals.WeekTotal = totals.WeekTotal.Add(e.Amount)
		}

		if sameMonth(date, now) {
			totals.MonthTotal = totals.MonthTotal.Add(e.Amount)
			sum, seen := byCategory[e.Category]
			if !seen {
				order = append(order, e.Category)
			}
			byCategory[e.Category] = sum.Add(e.Amount)
		}
	}

	for _, name := range order {
		sum := byCategory[name]
		totals.CategoryBreakdown = append(totals.CategoryBreakdown, CategoryShare{
			Category: name,
			Amount:   sum,
			Percent:  percentOf(sum, totals.MonthTotal),
		})
	}

	return totals
}

// percentOf renders part/whole*100 with one decimal. A zero whole yields "0.0".
func percentOf(part, whole decimal.Decimal) string {
	if whole.IsZero() {
		return decimal.Zero.StringFixed(1)
	}
	return part.Mul(hundred).Div(whole).StringFixed(1)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
