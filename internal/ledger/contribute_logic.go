package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/blues/cfl/internal/access"
	"github.com/blues/cfl/internal/event"
	"github.com/blues/cfl/internal/logger"
	"github.com/blues/cfl/internal/model"
	"github.com/blues/cfl/internal/token"
	"gorm.io/gorm"
)

// ContributionLogic 贡献账本业务逻辑
//
// 单次贡献的所有记账（累计记录、活动总额、用户总额、amount_raised、
// 支持者集合与计数）在同一个事务内完成，要么全部生效要么全部回滚。
type ContributionLogic struct {
	db       *gorm.DB
	access   *access.Control
	transfer token.TransferService
	treasury string
	notifier *event.Notifier
}

// NewContributionLogic 创建贡献账本业务逻辑
func NewContributionLogic(db *gorm.DB, ac *access.Control, transfer token.TransferService, treasury string, notifier *event.Notifier) *ContributionLogic {
	return &ContributionLogic{
		db:       db,
		access:   ac,
		transfer: transfer,
		treasury: model.NormalizeAddress(treasury),
		notifier: notifier,
	}
}

// Contribute 处理一次贡献
//
// 前置条件按顺序检查，每项是独立的失败；全部通过后先执行外部转账，
// 转账失败使整个调用失败（此时尚无任何变更），转账成功后无条件完成
// 其余记账，避免资金与账本脱节。
func (l *ContributionLogic) Contribute(ctx context.Context, caller string, campaignID uint64, amount uint64, tokenAddress string) (*model.Contribution, error) {
	if err := l.access.AssertNotPaused(); err != nil {
		return nil, err
	}
	if campaignID == 0 {
		return nil, ErrInvalidCampaignID
	}
	if amount == 0 {
		return nil, ErrInvalidAmount
	}
	if model.IsNullAddress(tokenAddress) {
		return nil, ErrNullToken
	}
	if model.IsNullAddress(caller) {
		return nil, ErrNullContributor
	}

	contributor := model.NormalizeAddress(caller)
	tokenAddr := model.NormalizeAddress(tokenAddress)

	var record model.Contribution
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var campaign model.Campaign
		if err := lockForUpdate(tx).First(&campaign, "id = ?", campaignID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCampaignNotFound
			}
			return err
		}
		if !campaign.IsActive {
			return ErrCampaignNotActive
		}
		if campaign.Status != model.CampaignStatusActive {
			return ErrCampaignNotFunding
		}

		// 外部转账：失败则中止，此前没有任何写入需要回滚
		ok, err := l.transfer.TransferFrom(ctx, tokenAddr, contributor, l.treasury, amount)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrTransferFailed, err)
		}
		if !ok {
			return ErrTransferFailed
		}

		// 累计贡献记录，隐式从零开始
		prior := uint64(0)
		err = lockForUpdate(tx).
			Where("campaign_id = ? AND contributor = ?", campaignID, contributor).
			First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = model.Contribution{CampaignID: campaignID, Contributor: contributor}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			prior = record.Amount
		}

		record.Amount = prior + amount
		if err := tx.Model(&model.Contribution{}).
			Where("campaign_id = ? AND contributor = ?", campaignID, contributor).
			Update("amount", record.Amount).Error; err != nil {
			return err
		}

		if err := addToCampaignTotal(tx, campaignID, amount); err != nil {
			return err
		}
		if err := addToUserTotal(tx, contributor, amount); err != nil {
			return err
		}

		campaign.AmountRaised += amount
		if prior == 0 {
			// 首次贡献：进入支持者集合，两个计数器各加一
			campaign.ContributorsCount++
			if err := tx.Create(&model.Supporter{CampaignID: campaignID, Contributor: contributor}).Error; err != nil {
				return err
			}
			if err := incrementSupporterCount(tx, campaignID); err != nil {
				return err
			}
		}

		return tx.Save(&campaign).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Contribution processed: campaign=%d contributor=%s amount=%d", campaignID, contributor, amount)
	l.notifier.ContributionProcessed(campaignID, contributor, amount)
	return &record, nil
}

// AddSupporter 创建者手工补登支持者
//
// 与贡献路径的隐式加入不同：该路径无条件递增支持者计数器，
// 对已存在的支持者会造成计数偏高，语义按原样保留。
func (l *ContributionLogic) AddSupporter(caller string, campaignID uint64, supporter string) error {
	var campaign model.Campaign
	if err := l.db.First(&campaign, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampaignNotFound
		}
		return err
	}
	if !model.SameAddress(caller, campaign.Creator) {
		return ErrNotCreator
	}
	if model.IsNullAddress(supporter) {
		return ErrNullSupporter
	}

	addr := model.NormalizeAddress(supporter)
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Supporter
		err := tx.Where("campaign_id = ? AND contributor = ?", campaignID, addr).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(&model.Supporter{CampaignID: campaignID, Contributor: addr}).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		return incrementSupporterCount(tx, campaignID)
	})
	if err != nil {
		return err
	}

	l.notifier.SupporterAdded(campaignID, addr)
	return nil
}

// GetContribution 获取贡献者在某活动的累计贡献，未知键返回0
func (l *ContributionLogic) GetContribution(campaignID uint64, contributor string) (uint64, error) {
	var record model.Contribution
	err := l.db.Where("campaign_id = ? AND contributor = ?", campaignID, model.NormalizeAddress(contributor)).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return record.Amount, nil
}

// GetCampaignContributions 获取活动贡献总额，未知键返回0
func (l *ContributionLogic) GetCampaignContributions(campaignID uint64) (uint64, error) {
	var total model.CampaignTotal
	err := l.db.Where("campaign_id = ?", campaignID).First(&total).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return total.Amount, nil
}

// GetUserContributions 获取贡献者跨活动总额，未知键返回0
func (l *ContributionLogic) GetUserContributions(contributor string) (uint64, error) {
	var total model.UserTotal
	err := l.db.Where("contributor = ?", model.NormalizeAddress(contributor)).First(&total).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return total.Amount, nil
}

// GetSupporterCount 获取活动支持者计数器的值
func (l *ContributionLogic) GetSupporterCount(campaignID uint64) (uint64, error) {
	var count model.SupporterCount
	err := l.db.Where("campaign_id = ?", campaignID).First(&count).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count.Count, nil
}

// IsSupporter 判断地址是否在活动支持者集合中
func (l *ContributionLogic) IsSupporter(campaignID uint64, addr string) (bool, error) {
	var count int64
	err := l.db.Model(&model.Supporter{}).
		Where("campaign_id = ? AND contributor = ?", campaignID, model.NormalizeAddress(addr)).
		Count(&count).Error
	return count > 0, err
}

// addToCampaignTotal 活动滚动总额累加
func addToCampaignTotal(tx *gorm.DB, campaignID uint64, amount uint64) error {
	var total model.CampaignTotal
	if err := tx.Where(model.CampaignTotal{CampaignID: campaignID}).FirstOrCreate(&total).Error; err != nil {
		return err
	}
	return tx.Model(&model.CampaignTotal{}).
		Where("campaign_id = ?", campaignID).
		Update("amount", gorm.Expr("amount + ?", amount)).Error
}

// addToUserTotal 用户滚动总额累加
func addToUserTotal(tx *gorm.DB, contributor string, amount uint64) error {
	var total model.UserTotal
	if err := tx.Where(model.UserTotal{Contributor: contributor}).FirstOrCreate(&total).Error; err != nil {
		return err
	}
	return tx.Model(&model.UserTotal{}).
		Where("contributor = ?", contributor).
		Update("amount", gorm.Expr("amount + ?", amount)).Error
}

// incrementSupporterCount 支持者计数器加一
func incrementSupporterCount(tx *gorm.DB, campaignID uint64) error {
	var count model.SupporterCount
	if err := tx.Where(model.SupporterCount{CampaignID: campaignID}).FirstOrCreate(&count).Error; err != nil {
		return err
	}
	return tx.Model(&model.SupporterCount{}).
		Where("campaign_id = ?", campaignID).
		Update("count", gorm.Expr("count + ?", 1)).Error
}
