package model

import (
	"time"
)

// CampaignStatus 活动状态
type CampaignStatus string

const (
	CampaignStatusUnknown   CampaignStatus = ""          // 未知（默认零值）
	CampaignStatusActive    CampaignStatus = "active"    // 进行中
	CampaignStatusPaused    CampaignStatus = "paused"    // 已暂停
	CampaignStatusCompleted CampaignStatus = "completed" // 已完成
)

// Campaign 众筹活动
//
// ID 由 campaign 序列分配（从1开始，永不复用），不使用数据库自增。
// 时间戳为 unix 秒，0 表示未设置。
type Campaign struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Creator     string `json:"creator" gorm:"not null;index"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url"`

	// 筹款信息
	Goal         uint64 `json:"goal" gorm:"not null"`
	AmountRaised uint64 `json:"amount_raised" gorm:"default:0"` // 只增不减，等于该活动所有贡献之和

	// 生命周期时间戳
	StartTimestamp int64 `json:"start_timestamp"`
	EndTimestamp   int64 `json:"end_timestamp" gorm:"default:0"`
	PausedAt       int64 `json:"paused_at" gorm:"default:0"`

	// 状态
	Status   CampaignStatus `json:"status" gorm:"index;default:'active'"`
	IsActive bool           `json:"is_active" gorm:"default:true"`

	// 统计
	ContributorsCount uint64 `json:"contributors_count" gorm:"default:0"` // 每个首次贡献者恰好加一
	RewardsIssued     bool   `json:"rewards_issued" gorm:"default:false"` // 预留字段
}
