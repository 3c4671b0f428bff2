package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/expense-tracker/internal/expense"
)

// Source supplies a consistent view of expenses and categories.
type Source interface {
	Snapshot() ([]expense.Expense, []string)
}

type Service struct {
	source Source
	logger *slog.Logger
	now    func() time.Time
}

func NewService(source Source, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Overview(_ context.Context) Totals {
	expenses, _ := s.source.Snapshot()
	totals := ComputeAggregates(expenses, s.now())
	s.logger.Debug("overview computed",
		"expenses", len(expenses),
		"month_total", totals.MonthTotal.String())
	return totals
}

func (s *Service) WeeklyChart(_ context.Context) []DailyTotal {
	expenses, _ := s.source.Snapshot()
	return WeeklyHistogram(expenses, s.now())
}

func (s *Service) CategoryChart(_ context.Context) []CategoryTotal {
	expenses, categories := s.source.Snapshot()
	return CategoryTotals(expenses, categories)
}
