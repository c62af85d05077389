package scheduler

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/kyoushitsu/internal/config"
	"github.com/example/kyoushitsu/internal/database/audit"
	"github.com/example/kyoushitsu/internal/entities"
)

func setupTestRepo(t *testing.T) (*audit.Repository, func()) {
	dbPath := "./test_scheduler_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.AuditEvent{}))

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return audit.NewRepository(db), cleanup
}

func TestAuditCleanupScheduler_StartStop(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	s := NewAuditCleanupScheduler(repo, config.Audit{
		RetentionDays:   30,
		CleanupSchedule: "0 3 * * *",
	})

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	assert.NotNil(t, s.NextRunTime())

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.NextRunTime())
}

func TestAuditCleanupScheduler_DisabledWithoutRetention(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	s := NewAuditCleanupScheduler(repo, config.Audit{
		RetentionDays:   0,
		CleanupSchedule: "0 3 * * *",
	})

	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}

func TestAuditCleanupScheduler_InvalidScheduleIsAnError(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	s := NewAuditCleanupScheduler(repo, config.Audit{
		RetentionDays:   30,
		CleanupSchedule: "not a schedule",
	})

	assert.Error(t, s.Start(context.Background()))
}

func TestAuditCleanupScheduler_PurgesStaleEvents(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	require.NoError(t, repo.LogEvent(&entities.AuditEvent{
		Action:    "login",
		CreatedAt: time.Now().AddDate(0, 0, -60),
	}))
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{
		Action:    "logout",
		CreatedAt: time.Now(),
	}))

	s := NewAuditCleanupScheduler(repo, config.Audit{
		RetentionDays:   30,
		CleanupSchedule: "0 3 * * *",
	})
	s.runCleanup()

	_, total, err := repo.ListEvents(10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
