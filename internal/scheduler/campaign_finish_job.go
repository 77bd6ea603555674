package scheduler

import (
	"time"

	"github.com/blues/cfl/internal/config"
	"github.com/blues/cfl/internal/logger"
	"github.com/blues/cfl/internal/model"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// CampaignFinishJob 活动完成任务
//
// completed状态只能经由这条外部路径进入：到达结束时间的进行中活动
// 被批量置为completed，创建者和管理员路径都不能直接写completed。
type CampaignFinishJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewCampaignFinishJob 创建活动完成任务
func NewCampaignFinishJob(db *gorm.DB, cfg *config.Config) *CampaignFinishJob {
	return &CampaignFinishJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *CampaignFinishJob) GetName() string {
	return "campaign_finisher"
}

// GetSchedule 获取调度配置
func (j *CampaignFinishJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute 执行任务
func (j *CampaignFinishJob) Execute() {
	now := time.Now().Unix()

	var campaigns []model.Campaign
	err := j.db.Where("status = ? AND end_timestamp > 0 AND end_timestamp <= ?",
		model.CampaignStatusActive, now).Find(&campaigns).Error
	if err != nil {
		logger.Error("Failed to fetch finishable campaigns: %v", err)
		return
	}

	finished := 0
	for _, campaign := range campaigns {
		if err := j.db.Model(&campaign).Update("status", model.CampaignStatusCompleted).Error; err != nil {
			logger.Error("Failed to complete campaign %d: %v", campaign.ID, err)
			continue
		}
		logger.Info("Campaign %d completed (end timestamp %d reached)", campaign.ID, campaign.EndTimestamp)
		finished++
	}

	if finished > 0 {
		logger.Info("Campaign finish run completed, %d campaigns updated", finished)
	}
}
