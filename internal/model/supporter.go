package model

import (
	"time"
)

// Supporter 活动支持者集合的成员标记
//
// 贡献者在累计贡献从零变为非零的那次调用中被加入，之后不再重复加入。
type Supporter struct {
	CampaignID  uint64    `json:"campaign_id" gorm:"primaryKey;autoIncrement:false"`
	Contributor string    `json:"contributor" gorm:"primaryKey;size:42"`
	CreatedAt   time.Time `json:"created_at"`
}

// SupporterCount 活动支持者计数器
//
// 与 Supporter 集合分开存储：手工补登支持者的路径会无条件递增该计数器，
// 因此它可能高于集合基数（见 DESIGN.md 的决策记录）。
type SupporterCount struct {
	CampaignID uint64    `json:"campaign_id" gorm:"primaryKey;autoIncrement:false"`
	Count      uint64    `json:"count" gorm:"not null;default:0"`
	UpdatedAt  time.Time `json:"updated_at"`
}
