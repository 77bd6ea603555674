package model

import (
	"time"
)

// Contribution 贡献记录
//
// 以 (活动ID, 贡献者) 为键的累计金额，只增不减。
type Contribution struct {
	CampaignID  uint64    `json:"campaign_id" gorm:"primaryKey;autoIncrement:false"`
	Contributor string    `json:"contributor" gorm:"primaryKey;size:42"`
	Amount      uint64    `json:"amount" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CampaignTotal 单个活动的贡献滚动总额
type CampaignTotal struct {
	CampaignID uint64    `json:"campaign_id" gorm:"primaryKey;autoIncrement:false"`
	Amount     uint64    `json:"amount" gorm:"not null;default:0"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserTotal 单个贡献者跨所有活动的贡献滚动总额
type UserTotal struct {
	Contributor string    `json:"contributor" gorm:"primaryKey;size:42"`
	Amount      uint64    `json:"amount" gorm:"not null;default:0"`
	UpdatedAt   time.Time `json:"updated_at"`
}
