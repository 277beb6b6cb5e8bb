package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	localCache "github.com/plumepress/plume/pkg/internal/cache"
	"github.com/plumepress/plume/pkg/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// useTestDatabase points database.C at a fresh in-memory store and
// resets the cache, so every test starts from nothing.
func useTestDatabase(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled :memory: connection per goroutine would mean a database
	// per connection; keep it on one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(db))
	require.NoError(t, localCache.NewStore())

	database.C = db
}
