package expense

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/frahmantamala/expense-tracker/internal/category"
	"github.com/frahmantamala/expense-tracker/internal/core/events"
	"github.com/frahmantamala/expense-tracker/internal/store"
)

// Repository holds the expense list (newest first) and the category set, and
// mirrors both to a store.Store after every mutation. Persistence failures
// never roll back memory; they are logged.
type Repository struct {
	store     store.Store
	publisher events.Publisher
	logger    *slog.Logger

	mu         sync.RWMutex
	expenses   []Expense
	categories []string
}

var _ category.Registry = (*Repository)(nil)

// NewRepository starts with no expenses and the default categories.
// publisher may be nil.
func NewRepository(st store.Store, publisher events.Publisher, logger *slog.Logger) *Repository {
	return &Repository{
		store:      st,
		publisher:  publisher,
		logger:     logger,
		expenses:   []Expense{},
		categories: category.Defaults(),
	}
}

type readResult int

const (
	readOK readResult = iota
	readAbsent
	readFailed
)

// Load replaces in-memory state with whatever the store holds. A missing or
// unreadable key leaves the current value in place.
func (r *Repository) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx, false)
}

// Reload re-reads the store for a long-running process that shares it with
// others. A missing key resets that list to its default, so a clear made
// elsewhere is picked up. An unreadable key still keeps the current value.
func (r *Repository) Reload(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx, true)
}

func (r *Repository) load(ctx context.Context, resetAbsent bool) {
	var expenses []Expense
	switch r.read(ctx, store.KeyExpenses, &expenses) {
	case readOK:
		if expenses == nil {
			expenses = []Expense{}
		}
		r.expenses = expenses
	case readAbsent:
		if resetAbsent {
			r.expenses = []Expense{}
		}
	}

	var categories []string
	switch r.read(ctx, store.KeyCategories, &categories) {
	case readOK:
		if categories == nil {
			categories = []string{}
		}
		r.categories = categories
	case readAbsent:
		if resetAbsent {
			r.categories = category.Defaults()
		}
	}

	r.logger.Info("repository loaded",
		"expenses", len(r.expenses),
		"categories", len(r.categories))
}

func (r *Repository) read(ctx context.Context, key string, dst interface{}) readResult {
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Error("failed to read from store", "key", key, "error", err)
		return readFailed
	}
	if !found {
		r.logger.Debug("key not present in store", "key", key)
		return readAbsent
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		r.logger.Error("failed to decode stored value", "key", key, "error", err)
		return readFailed
	}
	return readOK
}

func (r *Repository) write(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(payload)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// AddExpense prepends e and persists the full list.
func (r *Repository) AddExpense(ctx context.Context, e Expense) {
	r.mu.Lock()
	next := make([]Expense, 0, len(r.expenses)+1)
	next = append(next, e)
	r.expenses = append(next, r.expenses...)

	if err := r.write(ctx, store.KeyExpenses, r.expenses); err != nil {
		r.logger.Error("failed to persist expenses", "expense_id", e.ID, "error", err)
	}
	r.mu.Unlock()

	r.publish(ctx, events.NewExpenseAddedEvent(e.ID, e.Category, e.Amount.String()))
}

// AddCategory appends name when it is not already present and reports whether
// it did.
func (r *Repository) AddCategory(ctx context.Context, name string) bool {
	r.mu.Lock()
	next, added := category.Append(r.categories, name)
	if !added {
		r.mu.Unlock()
		return false
	}
	r.categories = next

	if err := r.write(ctx, store.KeyCategories, r.categories); err != nil {
		r.logger.Error("failed to persist categories", "name", name, "error", err)
	}
	r.mu.Unlock()

	r.publish(ctx, events.NewCategoryAddedEvent(name))
	return true
}

// ClearAll removes both keys, resets memory to defaults and re-persists the
// default categories. If the removal fails memory is left untouched.
func (r *Repository) ClearAll(ctx context.Context) bool {
	r.mu.Lock()

	if err := r.store.RemoveMany(ctx, []string{store.KeyExpenses, store.KeyCategories}); err != nil {
		r.mu.Unlock()
		r.logger.Error("failed to clear store", "error", err)
		return false
	}

	removed := len(r.expenses)
	r.expenses = []Expense{}
	r.categories = category.Defaults()

	if err := r.write(ctx, store.KeyCategories, r.categories); err != nil {
		r.mu.Unlock()
		r.logger.Error("failed to persist default categories", "error", err)
		return false
	}
	r.mu.Unlock()

	r.logger.Info("all data cleared", "removed_expenses", removed)
	r.publish(ctx, events.NewDataClearedEvent(removed))
	return true
}

// Expenses returns a copy of the list, newest first.
func (r *Repository) Expenses() []Expense {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneExpenses(r.expenses)
}

func (r *Repository) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneStrings(r.categories)
}

// Snapshot returns both lists as of a single instant.
func (r *Repository) Snapshot() ([]Expense, []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneExpenses(r.expenses), cloneStrings(r.categories)
}

func cloneExpenses(in []Expense) []Expense {
	out := make([]Expense, len(in))
	copy(out, in)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func (r *Repository) publish(ctx context.Context, event events.Event) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.Publish(ctx, event); err != nil {
		r.logger.Warn("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}
