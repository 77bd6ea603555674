package model

import (
	"time"
)

// 序列名称
const (
	CounterCampaign = "campaign"  // 活动ID序列
	CounterNFTToken = "nft_token" // NFT TokenID序列
)

// Counter 命名序列计数器
//
// 所有ID的唯一来源。ID只从这里分配，永不从表长度推导，删除也不会导致复用。
type Counter struct {
	Name      string    `json:"name" gorm:"primaryKey;size:32"`
	Value     uint64    `json:"value" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}
