package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/frahmantamala/expense-tracker/db"
	"github.com/frahmantamala/expense-tracker/internal"
	storePostgres "github.com/frahmantamala/expense-tracker/internal/store/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run db migration files under db/migrations directory",
	}
	migrateRollback bool
	migrateDir      string
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "", "sql migrations directory on disk (default: migrations embedded in the binary)")
}

func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	sqlDB, dialect, err := openMigrationDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("goose: failed to open DB: %w", err)
	}
	defer sqlDB.Close()

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	goose.SetTableName("schema_migrations")

	dir := migrateDir
	if dir == "" {
		goose.SetBaseFS(db.Migrations)
		dir = "migrations"
	}

	command := "up"
	if migrateRollback {
		command = "down"
	}
	if err := goose.RunContext(ctx, command, sqlDB, dir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	return nil
}

// openMigrationDB returns a plain *sql.DB for goose. Postgres goes through
// the pgx stdlib driver; sqlite reuses the gorm driver's connection.
func openMigrationDB(cfg internal.DatabaseConfig) (*sql.DB, string, error) {
	switch cfg.Driver {
	case internal.DriverPostgres:
		sqlDB, err := goose.OpenDBWithDriver("pgx", cfg.GetDSN())
		return sqlDB, "postgres", err
	case internal.DriverSQLite:
		cfg.AutoMigrate = false
		gdb, err := storePostgres.OpenDB(cfg)
		if err != nil {
			return nil, "", err
		}
		sqlDB, err := gdb.DB()
		return sqlDB, "sqlite3", err
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
