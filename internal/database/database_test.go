package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dmitrii14/enterprise-development/internal/config"
	"github.com/Dmitrii14/enterprise-development/internal/models"
)

func TestDialector(t *testing.T) {
	for driver, name := range map[string]string{
		config.DriverPostgres: "postgres",
		config.DriverMySQL:    "mysql",
		config.DriverSQLite:   "sqlite",
	} {
		d, err := Dialector(&config.DatabaseConfig{Driver: driver, Path: ":memory:"})
		require.NoError(t, err)
		assert.Equal(t, name, d.Name())
	}

	_, err := Dialector(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestConnect_SQLiteAutoMigrate(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}}

	db, err := Connect(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "table for %T", m)
	}
}

func TestMigrationFiles(t *testing.T) {
	for _, driver := range []string{config.DriverPostgres, config.DriverMySQL} {
		name, err := SQLDriverName(driver)
		require.NoError(t, err)
		assert.Equal(t, driver, name)
	}
	_, err := SQLDriverName(config.DriverSQLite)
	assert.Error(t, err)

	c := &config.DatabaseConfig{Driver: config.DriverMySQL, User: "u", Password: "p", Host: "h", Port: "3306", Name: "n", Timezone: "UTC"}
	assert.Contains(t, MigrationDSN(c), "multiStatements=true")
}
