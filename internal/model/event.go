package model

import (
	"time"
)

// 事件类型（同时作为通知总线的主题名）
const (
	EventCampaignCreated       = "campaign:created"
	EventCampaignStatusChanged = "campaign:status_changed"
	EventContributionProcessed = "contribution:processed"
	EventSupporterAdded        = "supporter:added"
	EventRewardMinted          = "reward:minted"
)

// Event 操作通知记录
type Event struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	EventID    string `json:"event_id" gorm:"uniqueIndex;size:36"`
	CampaignID uint64 `json:"campaign_id" gorm:"index"`
	EventType  string `json:"event_type" gorm:"not null;index"`
	Actor      string `json:"actor" gorm:"size:42"`
	Amount     uint64 `json:"amount"`
	Data       string `json:"data" gorm:"type:text"`
}
