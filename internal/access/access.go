package access

import (
	"errors"
	"time"

	"github.com/blues/cfl/internal/logger"
	"github.com/blues/cfl/internal/model"
	"gorm.io/gorm"
)

// Control 权限控制
//
// 管理员注册表、创建者审批名单和平台暂停开关的唯一写入口。
// 所有者是配置的单一身份，不属于管理员集合。
type Control struct {
	db    *gorm.DB
	owner string
}

// NewControl 创建权限控制
func NewControl(db *gorm.DB, ownerAddress string) *Control {
	return &Control{
		db:    db,
		owner: model.NormalizeAddress(ownerAddress),
	}
}

// GetOwner 获取所有者地址
func (c *Control) GetOwner() string {
	return c.owner
}

// IsOwner 判断是否为所有者
func (c *Control) IsOwner(addr string) bool {
	return model.SameAddress(addr, c.owner)
}

// IsAdmin 判断当前是否为在任管理员
func (c *Control) IsAdmin(addr string) bool {
	if model.IsNullAddress(addr) {
		return false
	}
	var count int64
	if err := c.db.Model(&model.AdminSlot{}).
		Where("address = ? AND live = ?", model.NormalizeAddress(addr), true).
		Count(&count).Error; err != nil {
		logger.Error("Failed to query admin slots for %s: %v", addr, err)
		return false
	}
	return count > 0
}

// IsAdminOrOwner 判断是否为所有者或在任管理员
func (c *Control) IsAdminOrOwner(addr string) bool {
	return c.IsOwner(addr) || c.IsAdmin(addr)
}

// AddAdmin 添加管理员（仅所有者）
//
// 已在任则为无操作。槽位为追加式：被移除过的地址重新添加会占用新槽位。
func (c *Control) AddAdmin(caller, addr string) error {
	if !c.IsOwner(caller) {
		return ErrNotOwner
	}
	if model.IsNullAddress(addr) {
		return ErrNullAddress
	}
	if c.IsAdmin(addr) {
		return nil
	}

	slot := model.AdminSlot{
		Address: model.NormalizeAddress(addr),
		Live:    true,
	}
	if err := c.db.Create(&slot).Error; err != nil {
		return err
	}

	logger.Info("Admin %s added at slot %d", slot.Address, slot.ID)
	return nil
}

// RemoveAdmin 移除管理员（仅所有者）
//
// 只翻转在任标志，槽位永久保留。不在任则为无操作。
func (c *Control) RemoveAdmin(caller, addr string) error {
	if !c.IsOwner(caller) {
		return ErrNotOwner
	}
	if c.IsOwner(addr) {
		return ErrRemoveOwner
	}
	if !c.IsAdmin(addr) {
		return nil
	}

	if err := c.db.Model(&model.AdminSlot{}).
		Where("address = ? AND live = ?", model.NormalizeAddress(addr), true).
		Update("live", false).Error; err != nil {
		return err
	}

	logger.Info("Admin %s removed", model.NormalizeAddress(addr))
	return nil
}

// GetAdminCount 获取历史添加过的管理员数量（含已移除）
func (c *Control) GetAdminCount() (int64, error) {
	var count int64
	err := c.db.Model(&model.AdminSlot{}).Count(&count).Error
	return count, err
}

// GetAdminByIndex 按插入顺序获取管理员地址
func (c *Control) GetAdminByIndex(index int64) (string, error) {
	count, err := c.GetAdminCount()
	if err != nil {
		return "", err
	}
	if index < 0 || index >= count {
		return "", ErrIndexOutOfRange
	}

	var slot model.AdminSlot
	if err := c.db.Order("id ASC").Offset(int(index)).First(&slot).Error; err != nil {
		return "", err
	}
	return slot.Address, nil
}

// GetAllAdmins 按插入倒序返回所有历史管理员地址（含已移除）
func (c *Control) GetAllAdmins() ([]string, error) {
	var slots []model.AdminSlot
	if err := c.db.Order("id DESC").Find(&slots).Error; err != nil {
		return nil, err
	}

	addresses := make([]string, len(slots))
	for i, slot := range slots {
		addresses[i] = slot.Address
	}
	return addresses, nil
}

// ApproveCreator 审批活动创建者（所有者或管理员）
func (c *Control) ApproveCreator(caller, addr string) error {
	if !c.IsAdminOrOwner(caller) {
		return ErrNotAdminOrOwner
	}
	if model.IsNullAddress(addr) {
		return ErrNullAddress
	}
	return c.setCreatorApproved(model.NormalizeAddress(addr), true)
}

// RevokeCreator 撤销创建者审批（所有者或管理员）
func (c *Control) RevokeCreator(caller, addr string) error {
	if !c.IsAdminOrOwner(caller) {
		return ErrNotAdminOrOwner
	}
	if model.IsNullAddress(addr) {
		return ErrNullAddress
	}
	return c.setCreatorApproved(model.NormalizeAddress(addr), false)
}

func (c *Control) setCreatorApproved(addr string, approved bool) error {
	var record model.ApprovedCreator
	err := c.db.Where("address = ?", addr).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.db.Create(&model.ApprovedCreator{Address: addr, Approved: approved}).Error
	}
	if err != nil {
		return err
	}
	return c.db.Model(&record).Update("approved", approved).Error
}

// IsApprovedCreator 判断是否为已审批的创建者
func (c *Control) IsApprovedCreator(addr string) bool {
	if model.IsNullAddress(addr) {
		return false
	}
	var record model.ApprovedCreator
	err := c.db.Where("address = ? AND approved = ?", model.NormalizeAddress(addr), true).
		First(&record).Error
	return err == nil
}

// PausePlatform 暂停平台（仅所有者）
func (c *Control) PausePlatform(caller string) error {
	if !c.IsOwner(caller) {
		return ErrNotOwner
	}
	return c.setPaused(true, time.Now().Unix())
}

// UnpausePlatform 恢复平台（仅所有者）
func (c *Control) UnpausePlatform(caller string) error {
	if !c.IsOwner(caller) {
		return ErrNotOwner
	}
	return c.setPaused(false, 0)
}

func (c *Control) setPaused(paused bool, pausedAt int64) error {
	var state model.PlatformState
	err := c.db.First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.db.Create(&model.PlatformState{Paused: paused, PausedAt: pausedAt}).Error
	}
	if err != nil {
		return err
	}
	return c.db.Model(&state).Updates(map[string]interface{}{
		"paused":    paused,
		"paused_at": pausedAt,
	}).Error
}

// IsPaused 判断平台是否处于暂停状态
func (c *Control) IsPaused() bool {
	var state model.PlatformState
	if err := c.db.First(&state).Error; err != nil {
		return false
	}
	return state.Paused
}

// AssertNotPaused 平台暂停时使整个调用失败
func (c *Control) AssertNotPaused() error {
	if c.IsPaused() {
		return ErrPlatformPaused
	}
	return nil
}
