package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is immutable once recorded. It is persisted as one element of the
// JSON array stored under store.KeyExpenses.
type Expense struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
	Date     time.Time       `json:"date"`
}

// NewExpense stamps a fresh id onto the given fields.
func NewExpense(amount decimal.Decimal, category, note string, date time.Time) Expense {
	return Expense{
		ID:       uuid.New().String(),
		Amount:   amount,
		Category: category,
		Note:     note,
		Date:     date,
	}
}

func (e Expense) HasNote() bool {
	return e.Note != ""
}
