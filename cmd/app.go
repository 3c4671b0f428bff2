package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/expense-tracker/internal"
	"github.com/frahmantamala/expense-tracker/internal/core/events"
	"github.com/frahmantamala/expense-tracker/internal/expense"
	"github.com/frahmantamala/expense-tracker/internal/store"
	"github.com/frahmantamala/expense-tracker/internal/store/memory"
	storePostgres "github.com/frahmantamala/expense-tracker/internal/store/postgres"
	"github.com/frahmantamala/expense-tracker/pkg/logger"
	"gorm.io/gorm"
)

// Dependencies is everything a command needs once configuration is loaded.
// Repo has already been loaded from Store.
type Dependencies struct {
	Config   *internal.Config
	Logger   *slog.Logger
	Store    store.Store
	Pinger   interface{ Ping(context.Context) error }
	EventBus *events.EventBus
	Repo     *expense.Repository

	db *gorm.DB
}

func initializeDependencies(ctx context.Context) (*Dependencies, error) {
	config, err := loadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	deps := &Dependencies{
		Config: config,
		Logger: lg,
	}

	switch config.Storage.Backend {
	case internal.StorageBackendMemory:
		st := memory.New()
		deps.Store = st
		deps.Pinger = st
	default:
		db, err := storePostgres.OpenDB(config.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		kv := storePostgres.NewKVStore(db)
		deps.db = db
		deps.Store = kv
		deps.Pinger = kv
	}

	deps.EventBus = events.NewEventBus(lg)
	subscribeAuditLog(deps.EventBus, lg)

	deps.Repo = expense.NewRepository(deps.Store, deps.EventBus, lg)
	deps.Repo.Load(ctx)

	lg.Info("dependencies initialized",
		"storage_backend", config.Storage.Backend,
		"database_driver", config.Database.Driver)

	return deps, nil
}

// subscribeAuditLog records every domain event at info level.
func subscribeAuditLog(bus *events.EventBus, lg *slog.Logger) {
	for _, eventType := range []string{
		events.EventTypeExpenseAdded,
		events.EventTypeCategoryAdded,
		events.EventTypeDataCleared,
	} {
		bus.Subscribe(eventType, func(ctx context.Context, event events.Event) error {
			lg.Info("domain event",
				"event_id", event.EventID(),
				"event_type", event.EventType(),
				"payload", event.Payload())
			return nil
		})
	}
}

// Close drains pending event handlers and releases the database.
func (d *Dependencies) Close() {
	ctx, cancel := internal.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := d.EventBus.Wait(ctx); err != nil {
		d.Logger.Warn("event handlers still running at shutdown", "error", err)
	}

	if d.db == nil {
		return
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		d.Logger.Error("database handle unavailable", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		d.Logger.Error("database close error", "error", err)
	}
}
