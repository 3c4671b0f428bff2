package expense

import (
	"time"

	errors "github.com/frahmantamala/expense-tracker/internal"
	"github.com/frahmantamala/expense-tracker/internal/core/common/validation"
	"github.com/shopspring/decimal"
)

type CreateExpenseDTO struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
	Date     *time.Time      `json:"date,omitempty"`
}

// Validate checks the payload against the current category set.
func (dto CreateExpenseDTO) Validate(categories []string, now time.Time) *errors.AppError {
	validator := validation.NewValidator()

	validator.Field("amount", dto.Amount).
		Required().
		Positive(errors.ErrCodeInvalidAmount)

	validator.Field("category", dto.Category).
		Required().
		OneOf(categories, errors.ErrCodeUnknownCategory)

	validator.Field("note", dto.Note).
		MaxLength(validation.MaxNoteLength, errors.ErrCodeInvalidNote)

	if dto.Date != nil {
		validator.Field("date", *dto.Date).
			Required().
			NotFuture(now)
	}

	return validator.Validate()
}

type ExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
	Count    int       `json:"count"`
}

type ClearResponse struct {
	Cleared bool `json:"cleared"`
}
