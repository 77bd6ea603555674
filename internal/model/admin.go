package model

import (
	"time"
)

// AdminSlot 管理员槽位
//
// 追加式日志：移除管理员只翻转 Live 标志，槽位永不删除或压缩，
// 重新添加同一地址会产生新的槽位。ID 即插入顺序。
type AdminSlot struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Address   string    `json:"address" gorm:"not null;index;size:42"`
	Live      bool      `json:"live" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApprovedCreator 已审批的活动创建者
type ApprovedCreator struct {
	Address   string    `json:"address" gorm:"primaryKey;size:42"`
	Approved  bool      `json:"approved" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlatformState 平台运行状态（单行）
type PlatformState struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Paused    bool      `json:"paused" gorm:"not null;default:false"`
	PausedAt  int64     `json:"paused_at" gorm:"default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}
