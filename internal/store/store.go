// Package store defines the key-value capability the expense repository
// persists through. Durability and atomicity belong to the implementation.
package store

import "context"

const (
	KeyExpenses   = "expenses"
	KeyCategories = "categories"
)

// Store is the persistence capability consumed by the repository.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	RemoveMany(ctx context.Context, keys []string) error
}
