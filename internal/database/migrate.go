package database

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Dmitrii14/enterprise-development/internal/config"
	"github.com/Dmitrii14/enterprise-development/internal/database/migrations"
)

// SQLDriverName maps a configured driver to its database/sql driver name.
func SQLDriverName(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverMySQL:
		return "mysql", nil
	default:
		return "", fmt.Errorf("no SQL migrations for driver %q", driver)
	}
}

// MigrationDSN is the DSN cmd/migrate opens. MySQL needs multi-statement
// support to run the schema files.
func MigrationDSN(c *config.DatabaseConfig) string {
	if c.Driver == config.DriverMySQL {
		return c.DSN() + "&multiStatements=true"
	}
	return c.DSN()
}

// NewMigrator builds a migrate instance over the embedded SQL for driver.
func NewMigrator(db *sql.DB, driver string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.Files, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	var target migratedb.Driver
	switch driver {
	case config.DriverPostgres:
		target, err = migratepg.WithInstance(db, &migratepg.Config{})
	case config.DriverMySQL:
		target, err = migratemysql.WithInstance(db, &migratemysql.Config{})
	default:
		return nil, fmt.Errorf("no SQL migrations for driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies every pending migration. It is safe to call
// repeatedly; an up-to-date schema is not an error.
func RunMigrations(db *sql.DB, driver string, log *zap.Logger) error {
	m, err := NewMigrator(db, driver)
	if err != nil {
		return err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn("Failed to close migrator", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("No migrations to apply (database up-to-date)")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := m.Version()
	log.Info("Applied migrations successfully", zap.Uint("version", version))
	return nil
}
