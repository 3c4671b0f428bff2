package postgres

import (
	"context"
	"errors"
	"fmt"

	kvDatamodel "github.com/frahmantamala/expense-tracker/internal/core/datamodel/kv"
	"github.com/frahmantamala/expense-tracker/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore implements store.Store on a single gorm table. It works with both
// the postgres and sqlite gorm drivers.
type KVStore struct {
	db *gorm.DB
}

func NewKVStore(db *gorm.DB) *KVStore {
	return &KVStore{db: db}
}

var _ store.Store = (*KVStore)(nil)

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry kvDatamodel.Entry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	entry := kvDatamodel.Entry{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_key IN ?", keys).Delete(&kvDatamodel.Entry{}).Error; err != nil {
			return fmt.Errorf("remove %v: %w", keys, err)
		}
		return nil
	})
}

// Ping checks the underlying connection, used by the health endpoint.
func (s *KVStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
