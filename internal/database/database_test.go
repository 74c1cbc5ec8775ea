package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskmanager-api/internal/config"
	"github.com/yukikurage/taskmanager-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func memoryConfig() *config.Config {
	return &config.Config{
		DBDriver:   config.DriverSQLite,
		DBPath:     ":memory:",
		DBLogLevel: "silent",
	}
}

func connectMemory(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Connect(memoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() {
		Close(db)
	})
	return db
}

func TestConnect_SQLiteMemory(t *testing.T) {
	db := connectMemory(t)

	require.NoError(t, Ping(context.Background(), db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestConnect_CreatesSQLiteDir(t *testing.T) {
	cfg := memoryConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "nested", "taskmanager.db")

	db, err := Connect(cfg)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db, false))
	assert.FileExists(t, cfg.DBPath)
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.DBDriver = "oracle"

	_, err := Connect(cfg)
	assert.Error(t, err)
}

func TestMigrate_CreatesTables(t *testing.T) {
	db := connectMemory(t)

	require.NoError(t, Migrate(db, false))

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Task{}))
	assert.True(t, db.Migrator().HasIndex(&models.Task{}, taskSlugIndex))
	assert.False(t, db.Migrator().HasIndex(&models.Task{}, taskSlugUniqueIndex))

	// idempotent
	require.NoError(t, Migrate(db, false))
}

func TestEnsureTaskSlugIndex_Toggle(t *testing.T) {
	db := connectMemory(t)
	require.NoError(t, Migrate(db, false))

	require.NoError(t, EnsureTaskSlugIndex(db, true))
	assert.True(t, db.Migrator().HasIndex(&models.Task{}, taskSlugUniqueIndex))
	assert.False(t, db.Migrator().HasIndex(&models.Task{}, taskSlugIndex))

	require.NoError(t, EnsureTaskSlugIndex(db, false))
	assert.True(t, db.Migrator().HasIndex(&models.Task{}, taskSlugIndex))
	assert.False(t, db.Migrator().HasIndex(&models.Task{}, taskSlugUniqueIndex))
}

func TestEnsureTaskSlugIndex_UniqueFailsOnDuplicates(t *testing.T) {
	db := connectMemory(t)
	require.NoError(t, Migrate(db, false))

	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&models.Task{Title: "Same", Content: "c", Slug: "same", UserID: 1}).Error)
	}

	assert.Error(t, EnsureTaskSlugIndex(db, true))

	assert.True(t, db.Migrator().HasIndex(&models.Task{}, taskSlugIndex))
	assert.False(t, db.Migrator().HasIndex(&models.Task{}, taskSlugUniqueIndex))
}

func TestScopes(t *testing.T) {
	db := connectMemory(t)
	require.NoError(t, Migrate(db, false))

	for _, uid := range []uint64{2, 1, 2} {
		require.NoError(t, db.Create(&models.Task{Title: "t", Content: "c", Slug: "t", UserID: uid}).Error)
	}

	var tasks []models.Task
	require.NoError(t, db.Scopes(OwnedBy(2), OrderByID).Find(&tasks).Error)
	require.Len(t, tasks, 2)
	assert.Less(t, tasks[0].ID, tasks[1].ID)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("silent"))
	assert.Equal(t, logger.Error, parseLogLevel("ERROR"))
	assert.Equal(t, logger.Info, parseLogLevel("info"))
	assert.Equal(t, logger.Warn, parseLogLevel(""))
}
