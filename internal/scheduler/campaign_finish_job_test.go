package scheduler

import (
	"testing"
	"time"

	"github.com/blues/cfl/internal/config"
	"github.com/blues/cfl/internal/database"
	"github.com/blues/cfl/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedCampaign(t *testing.T, db *gorm.DB, id uint64, status model.CampaignStatus, endTimestamp int64) {
	t.Helper()
	require.NoError(t, db.Create(&model.Campaign{
		ID:             id,
		Creator:        "0xCc00000000000000000000000000000000000001",
		Title:          "t",
		Status:         status,
		IsActive:       true,
		StartTimestamp: time.Now().Unix() - 3600,
		EndTimestamp:   endTimestamp,
	}).Error)
}

func campaignStatus(t *testing.T, db *gorm.DB, id uint64) model.CampaignStatus {
	t.Helper()
	var campaign model.Campaign
	require.NoError(t, db.First(&campaign, "id = ?", id).Error)
	return campaign.Status
}

func TestCampaignFinishJob(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().Unix()

	seedCampaign(t, db, 1, model.CampaignStatusActive, now-60) // 已到期
	seedCampaign(t, db, 2, model.CampaignStatusActive, now+3600)
	seedCampaign(t, db, 3, model.CampaignStatusActive, 0) // 未设置结束时间
	seedCampaign(t, db, 4, model.CampaignStatusPaused, now-60)

	job := NewCampaignFinishJob(db, &config.Config{Scheduler: config.SchedulerConfig{Interval: 60}})
	job.Execute()

	assert.Equal(t, model.CampaignStatusCompleted, campaignStatus(t, db, 1))
	assert.Equal(t, model.CampaignStatusActive, campaignStatus(t, db, 2))
	assert.Equal(t, model.CampaignStatusActive, campaignStatus(t, db, 3))
	// 暂停中的活动不被批量完成
	assert.Equal(t, model.CampaignStatusPaused, campaignStatus(t, db, 4))

	// 重复执行是幂等的
	job.Execute()
	assert.Equal(t, model.CampaignStatusCompleted, campaignStatus(t, db, 1))
}
