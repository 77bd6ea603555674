package model

import (
	"time"
)

// 奖励等级范围
const (
	MinRewardTier uint8 = 1
	MaxRewardTier uint8 = 5
)

// NFTReward 支持者奖励NFT
//
// TokenID 由 nft_token 序列分配，从1开始。
type NFTReward struct {
	TokenID     uint64    `json:"token_id" gorm:"primaryKey;autoIncrement:false"`
	Recipient   string    `json:"recipient" gorm:"not null;index;size:42"`
	Tier        uint8     `json:"tier" gorm:"not null"`
	Claimed     bool      `json:"claimed" gorm:"not null;default:false"`
	MetadataURI string    `json:"metadata_uri"`
	CreatedAt   time.Time `json:"created_at"`
}

// RewardClaim 按 (用户, 等级) 记录的全局领取标志
//
// 不按活动区分：同一等级在所有活动范围内只能领取一次。
type RewardClaim struct {
	Recipient string    `json:"recipient" gorm:"primaryKey;size:42"`
	Tier      uint8     `json:"tier" gorm:"primaryKey;autoIncrement:false"`
	Claimed   bool      `json:"claimed" gorm:"not null;default:false"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TierMetadata 等级到元数据URI的映射，构造时播种默认值，管理员可改
type TierMetadata struct {
	Tier      uint8     `json:"tier" gorm:"primaryKey;autoIncrement:false"`
	URI       string    `json:"uri" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultTierMetadata 五个等级的默认元数据URI
var DefaultTierMetadata = map[uint8]string{
	1: "ipfs://cfl-rewards/tier-1.json",
	2: "ipfs://cfl-rewards/tier-2.json",
	3: "ipfs://cfl-rewards/tier-3.json",
	4: "ipfs://cfl-rewards/tier-4.json",
	5: "ipfs://cfl-rewards/tier-5.json",
}
