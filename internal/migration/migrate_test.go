package migration

import (
	"testing"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestRunAndRollback(t *testing.T) {
	db := openDB(t)
	assert.Len(t, Missing(db), len(Models()))

	require.NoError(t, Run(db))
	assert.Empty(t, Missing(db))

	// idempotent
	require.NoError(t, Run(db))

	require.NoError(t, Rollback(db))
	assert.Len(t, Missing(db), len(Models()))
}

func TestSeedLocal_OnlyOnce(t *testing.T) {
	db := openDB(t)
	require.NoError(t, Run(db))

	require.NoError(t, SeedLocal(db))
	require.NoError(t, SeedLocal(db))

	var users, groups, joins int64
	db.Model(&domain.User{}).Count(&users)
	db.Model(&domain.Group{}).Count(&groups)
	db.Model(&domain.UserJoinGroup{}).Count(&joins)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), groups)
	assert.Equal(t, int64(1), joins)
}
