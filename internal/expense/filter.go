package expense

import (
	"sort"
	"strings"
)

type SortMode string

const (
	SortLatest  SortMode = "Latest"
	SortHighest SortMode = "Highest"

	// CategoryAll disables the category filter.
	CategoryAll = "All"
)

type Query struct {
	Category string
	Search   string
	Sort     SortMode
}

// FilterAndSort returns a new slice holding the expenses that pass q, ordered
// by q.Sort. An unrecognised sort mode keeps the input order. The input slice
// is never modified.
func FilterAndSort(expenses []Expense, q Query) []Expense {
	search := strings.ToLower(q.Search)

	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if q.Category != "" && q.Category != CategoryAll && e.Category != q.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Note), search) {
			continue
		}
		out = append(out, e)
	}

	switch q.Sort {
	case SortLatest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.After(out[j].Date)
		})
	case SortHighest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.GreaterThan(out[j].Amount)
		})
	}

	return out
}
