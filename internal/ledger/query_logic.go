package ledger

import (
	"github.com/blues/cfl/internal/model"
	"gorm.io/gorm"
)

// QueryLogic 只读报表查询
//
// 并列第一全部返回：先取指标最大值，再取所有等于最大值的活动。
type QueryLogic struct {
	db *gorm.DB
}

// NewQueryLogic 创建报表查询
func NewQueryLogic(db *gorm.DB) *QueryLogic {
	return &QueryLogic{db: db}
}

// GetCampaigns 获取全部活动，按ID升序
func (l *QueryLogic) GetCampaigns() ([]model.Campaign, error) {
	var campaigns []model.Campaign
	err := l.db.Order("id ASC").Find(&campaigns).Error
	return campaigns, err
}

// GetTopCampaigns 获取筹款额最高的活动（含全部并列）
func (l *QueryLogic) GetTopCampaigns() ([]model.Campaign, error) {
	return l.topBy(l.db.Model(&model.Campaign{}))
}

// GetFeaturedCampaigns 获取进行中活动里筹款额最高的（含全部并列）
func (l *QueryLogic) GetFeaturedCampaigns() ([]model.Campaign, error) {
	filter := l.db.Model(&model.Campaign{}).
		Where("status = ? AND is_active = ?", model.CampaignStatusActive, true)
	return l.topBy(filter)
}

// GetUserCampaigns 获取某创建者的全部活动
func (l *QueryLogic) GetUserCampaigns(creator string) ([]model.Campaign, error) {
	var campaigns []model.Campaign
	err := l.db.Where("creator = ?", model.NormalizeAddress(creator)).
		Order("id ASC").Find(&campaigns).Error
	return campaigns, err
}

// topBy 在给定筛选范围内返回amount_raised等于最大值的所有活动
func (l *QueryLogic) topBy(filter *gorm.DB) ([]model.Campaign, error) {
	var count int64
	if err := filter.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return []model.Campaign{}, nil
	}

	var max uint64
	if err := filter.Session(&gorm.Session{}).
		Select("COALESCE(MAX(amount_raised), 0)").Scan(&max).Error; err != nil {
		return nil, err
	}

	var campaigns []model.Campaign
	err := filter.Session(&gorm.Session{}).
		Where("amount_raised = ?", max).
		Order("id ASC").Find(&campaigns).Error
	return campaigns, err
}
