package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Dmitrii14/enterprise-development/internal/models"
	"github.com/Dmitrii14/enterprise-development/internal/seed"
)

// setupTestDB opens an in-memory SQLite database with every table migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err, "open test database")

	// Every pooled connection would get its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...), "migrate test database")
	return db
}

// seededDB is setupTestDB loaded with the reference dataset.
func seededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := setupTestDB(t)
	wrote, err := seed.Apply(context.Background(), db)
	require.NoError(t, err)
	require.True(t, wrote)
	return db
}

func count[T any](t *testing.T, db *gorm.DB, query string, args ...any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(new(T)).Where(query, args...).Count(&n).Error)
	return n
}
