package ledger

import (
	"errors"

	"github.com/blues/cfl/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate 行级锁，sqlite方言不支持FOR UPDATE时退化为普通查询
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// nextSequence 在事务内分配命名序列的下一个值
//
// 计数器只增不减，是ID的唯一来源；从1开始，永不复用。
func nextSequence(tx *gorm.DB, name string) (uint64, error) {
	var counter model.Counter
	err := lockForUpdate(tx).Where("name = ?", name).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		counter = model.Counter{Name: name, Value: 0}
		if err := tx.Create(&counter).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	counter.Value++
	if err := tx.Model(&model.Counter{}).Where("name = ?", name).
		Update("value", counter.Value).Error; err != nil {
		return 0, err
	}
	return counter.Value, nil
}
