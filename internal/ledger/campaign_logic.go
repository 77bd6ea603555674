package ledger

import (
	"errors"
	"time"

	"github.com/blues/cfl/internal/access"
	"github.com/blues/cfl/internal/event"
	"github.com/blues/cfl/internal/logger"
	"github.com/blues/cfl/internal/model"
	"gorm.io/gorm"
)

// CampaignLogic 活动存储业务逻辑
type CampaignLogic struct {
	db       *gorm.DB
	access   *access.Control
	notifier *event.Notifier
}

// NewCampaignLogic 创建活动业务逻辑
func NewCampaignLogic(db *gorm.DB, ac *access.Control, notifier *event.Notifier) *CampaignLogic {
	return &CampaignLogic{db: db, access: ac, notifier: notifier}
}

// CreateCampaign 创建活动
//
// 平台暂停、空创建者地址或创建者未审批时失败。
// ID从活动序列分配，状态初始为active。
func (l *CampaignLogic) CreateCampaign(caller, title, description string, goal uint64, imageURL string) (*model.Campaign, error) {
	if err := l.access.AssertNotPaused(); err != nil {
		return nil, err
	}
	if model.IsNullAddress(caller) {
		return nil, ErrNullCreator
	}
	creator := model.NormalizeAddress(caller)
	if !l.access.IsApprovedCreator(creator) {
		return nil, ErrCreatorNotApproved
	}

	var campaign model.Campaign
	err := l.db.Transaction(func(tx *gorm.DB) error {
		id, err := nextSequence(tx, model.CounterCampaign)
		if err != nil {
			return err
		}

		campaign = model.Campaign{
			ID:             id,
			Creator:        creator,
			Title:          title,
			Description:    description,
			ImageURL:       imageURL,
			Goal:           goal,
			StartTimestamp: time.Now().Unix(),
			EndTimestamp:   0,
			PausedAt:       0,
			Status:         model.CampaignStatusActive,
			IsActive:       true,
		}
		return tx.Create(&campaign).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Campaign %d created by %s", campaign.ID, creator)
	l.notifier.CampaignCreated(&campaign)
	return &campaign, nil
}

// GetCampaign 获取活动
func (l *CampaignLogic) GetCampaign(id uint64) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := l.db.First(&campaign, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

// SetCampaignEndTime 设置活动结束时间（仅创建者）
func (l *CampaignLogic) SetCampaignEndTime(caller string, id uint64, endTimestamp int64) error {
	campaign, err := l.GetCampaign(id)
	if err != nil {
		return err
	}
	if !model.SameAddress(caller, campaign.Creator) {
		return ErrNotCreator
	}
	if endTimestamp <= 0 {
		return ErrInvalidEndTime
	}
	return l.db.Model(campaign).Update("end_timestamp", endTimestamp).Error
}

// UpdateCampaignStatus 创建者路径的状态变更
//
// 仅允许active与paused之间的转换；completed和未知状态不可变更。
// 与管理员的强制暂停路径相互独立，二者之间没有互斥保护，后写者生效。
func (l *CampaignLogic) UpdateCampaignStatus(caller string, id uint64, status model.CampaignStatus) error {
	campaign, err := l.GetCampaign(id)
	if err != nil {
		return err
	}
	if !model.SameAddress(caller, campaign.Creator) {
		return ErrNotCreator
	}
	if status != model.CampaignStatusActive && status != model.CampaignStatusPaused {
		return ErrInvalidStatus
	}
	if campaign.Status != model.CampaignStatusActive && campaign.Status != model.CampaignStatusPaused {
		return ErrStatusNotMutable
	}

	if err := l.db.Model(campaign).Update("status", status).Error; err != nil {
		return err
	}

	logger.Info("Campaign %d status set to %s by creator", id, status)
	l.notifier.CampaignStatusChanged(id, model.NormalizeAddress(caller), status)
	return nil
}

// PauseCampaign 管理员路径的强制暂停（所有者或管理员）
//
// 不检查当前状态，无条件覆盖，并记录paused_at。
func (l *CampaignLogic) PauseCampaign(caller string, id uint64) error {
	if !l.access.IsAdminOrOwner(caller) {
		return access.ErrNotAdminOrOwner
	}
	campaign, err := l.GetCampaign(id)
	if err != nil {
		return err
	}

	if err := l.db.Model(campaign).Updates(map[string]interface{}{
		"status":    model.CampaignStatusPaused,
		"paused_at": time.Now().Unix(),
	}).Error; err != nil {
		return err
	}

	logger.Info("Campaign %d force-paused by %s", id, model.NormalizeAddress(caller))
	l.notifier.CampaignStatusChanged(id, model.NormalizeAddress(caller), model.CampaignStatusPaused)
	return nil
}

// UnpauseCampaign 管理员路径的强制恢复（所有者或管理员）
func (l *CampaignLogic) UnpauseCampaign(caller string, id uint64) error {
	if !l.access.IsAdminOrOwner(caller) {
		return access.ErrNotAdminOrOwner
	}
	campaign, err := l.GetCampaign(id)
	if err != nil {
		return err
	}

	if err := l.db.Model(campaign).Updates(map[string]interface{}{
		"status":    model.CampaignStatusActive,
		"paused_at": int64(0),
	}).Error; err != nil {
		return err
	}

	logger.Info("Campaign %d force-unpaused by %s", id, model.NormalizeAddress(caller))
	l.notifier.CampaignStatusChanged(id, model.NormalizeAddress(caller), model.CampaignStatusActive)
	return nil
}

// GetCampaignStats 获取活动统计（仅创建者）
func (l *CampaignLogic) GetCampaignStats(caller string, id uint64) (map[string]interface{}, error) {
	campaign, err := l.GetCampaign(id)
	if err != nil {
		return nil, err
	}
	if !model.SameAddress(caller, campaign.Creator) {
		return nil, ErrNotCreator
	}
	return l.buildStats(campaign)
}

// AdminGetCampaignStats 获取活动统计（仅管理员），载荷与创建者版本一致
func (l *CampaignLogic) AdminGetCampaignStats(caller string, id uint64) (map[string]interface{}, error) {
	if !l.access.IsAdmin(caller) {
		return nil, access.ErrNotAdmin
	}
	campaign, err := l.GetCampaign(id)
	if err != nil {
		return nil, err
	}
	return l.buildStats(campaign)
}

// buildStats 组装统计载荷
func (l *CampaignLogic) buildStats(campaign *model.Campaign) (map[string]interface{}, error) {
	var supporterCount model.SupporterCount
	err := l.db.Where("campaign_id = ?", campaign.ID).First(&supporterCount).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	completion := float64(0)
	if campaign.Goal > 0 {
		completion = float64(campaign.AmountRaised) / float64(campaign.Goal) * 100
	}

	return map[string]interface{}{
		"campaign_id":           campaign.ID,
		"title":                 campaign.Title,
		"status":                string(campaign.Status),
		"is_active":             campaign.IsActive,
		"goal":                  campaign.Goal,
		"amount_raised":         campaign.AmountRaised,
		"completion_percentage": completion,
		"contributors_count":    campaign.ContributorsCount,
		"supporter_count":       supporterCount.Count,
		"start_timestamp":       campaign.StartTimestamp,
		"end_timestamp":         campaign.EndTimestamp,
		"paused_at":             campaign.PausedAt,
		"updated_at":            campaign.UpdatedAt,
	}, nil
}
