package expense

import (
	"context"
	"log/slog"
	"time"

	errors "github.com/frahmantamala/expense-tracker/internal"
)

// RepositoryAPI is the part of Repository the service needs.
type RepositoryAPI interface {
	AddExpense(ctx context.Context, e Expense)
	Expenses() []Expense
	Categories() []string
	ClearAll(ctx context.Context) bool
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for default dates and the
// future-date check.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateExpense validates dto, records a new expense and returns it. An empty
// category falls back to the first category in the set; a missing date is now.
func (s *Service) CreateExpense(ctx context.Context, dto CreateExpenseDTO) (*Expense, error) {
	now := s.now()
	categories := s.repo.Categories()

	if dto.Category == "" && len(categories) > 0 {
		dto.Category = categories[0]
	}

	if appErr := dto.Validate(categories, now); appErr != nil {
		s.logger.Warn("expense validation failed", "error", appErr.GetDetailedMessage(), "category", dto.Category)
		return nil, appErr
	}

	date := now
	if dto.Date != nil {
		date = *dto.Date
	}

	e := NewExpense(dto.Amount, dto.Category, dto.Note, date)
	s.repo.AddExpense(ctx, e)

	s.logger.Info("expense created successfully",
		"expense_id", e.ID,
		"amount", e.Amount.String(),
		"category", e.Category)

	return &e, nil
}

// ListExpenses applies q to the current list.
func (s *Service) ListExpenses(_ context.Context, q Query) []Expense {
	return FilterAndSort(s.repo.Expenses(), q)
}

func (s *Service) ClearAll(ctx context.Context) error {
	if !s.repo.ClearAll(ctx) {
		return errors.ErrClearFailed
	}
	return nil
}
