package ledger

import (
	"errors"

	"github.com/blues/cfl/internal/access"
	"github.com/blues/cfl/internal/event"
	"github.com/blues/cfl/internal/logger"
	"github.com/blues/cfl/internal/model"
	"gorm.io/gorm"
)

// GetNFTTier 按支持的活动数量计算奖励等级
//
// 纯函数：阈值1..5对应等级1..5，超过5封顶，低于1为0。
func GetNFTTier(campaignCount uint64) uint8 {
	if campaignCount >= uint64(model.MaxRewardTier) {
		return model.MaxRewardTier
	}
	return uint8(campaignCount)
}

// RewardLogic 奖励等级评估业务逻辑
//
// 领取标志按 (用户, 等级) 全局记录，不区分活动。
type RewardLogic struct {
	db       *gorm.DB
	access   *access.Control
	notifier *event.Notifier
}

// NewRewardLogic 创建奖励业务逻辑
func NewRewardLogic(db *gorm.DB, ac *access.Control, notifier *event.Notifier) *RewardLogic {
	return &RewardLogic{db: db, access: ac, notifier: notifier}
}

// validateTier 等级必须在1到5之间
func validateTier(tier uint8) error {
	if tier < model.MinRewardTier || tier > model.MaxRewardTier {
		return ErrInvalidTier
	}
	return nil
}

// SupportedCampaignCount 用户支持过的不同活动数量
func (l *RewardLogic) SupportedCampaignCount(user string) (uint64, error) {
	var count int64
	err := l.db.Model(&model.Supporter{}).
		Where("contributor = ?", model.NormalizeAddress(user)).
		Count(&count).Error
	return uint64(count), err
}

// HasClaimedReward 查询用户某等级是否已领取
func (l *RewardLogic) HasClaimedReward(user string, tier uint8) (bool, error) {
	if err := validateTier(tier); err != nil {
		return false, err
	}
	var claim model.RewardClaim
	err := l.db.Where("recipient = ? AND tier = ?", model.NormalizeAddress(user), tier).
		First(&claim).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return claim.Claimed, nil
}

// CanClaimTierReward 判断用户是否可领取某等级的奖励
//
// 资格 = 支持的活动数换算的等级覆盖目标等级，且该等级尚未领取。
func (l *RewardLogic) CanClaimTierReward(user string, tier uint8) (bool, error) {
	if err := validateTier(tier); err != nil {
		return false, err
	}

	count, err := l.SupportedCampaignCount(user)
	if err != nil {
		return false, err
	}
	if tier > GetNFTTier(count) {
		return false, nil
	}

	claimed, err := l.HasClaimedReward(user, tier)
	if err != nil {
		return false, err
	}
	return !claimed, nil
}

// MintNFTReward 为接收者铸造最高的可领取等级奖励
//
// TokenID从nft_token序列分配；铸造即置领取标志并记入接收者名下。
func (l *RewardLogic) MintNFTReward(recipient string) (*model.NFTReward, error) {
	if model.IsNullAddress(recipient) {
		return nil, ErrNullRecipient
	}
	addr := model.NormalizeAddress(recipient)

	count, err := l.SupportedCampaignCount(addr)
	if err != nil {
		return nil, err
	}
	maxTier := GetNFTTier(count)

	// 从高到低找第一个未领取的等级
	var tier uint8
	for t := maxTier; t >= model.MinRewardTier; t-- {
		claimed, err := l.HasClaimedReward(addr, t)
		if err != nil {
			return nil, err
		}
		if !claimed {
			tier = t
			break
		}
	}
	if tier == 0 {
		return nil, ErrNoClaimableTier
	}

	uri, err := l.GetTierMetadata(tier)
	if err != nil {
		return nil, err
	}

	var reward model.NFTReward
	err = l.db.Transaction(func(tx *gorm.DB) error {
		tokenID, err := nextSequence(tx, model.CounterNFTToken)
		if err != nil {
			return err
		}

		reward = model.NFTReward{
			TokenID:     tokenID,
			Recipient:   addr,
			Tier:        tier,
			Claimed:     true,
			MetadataURI: uri,
		}
		if err := tx.Create(&reward).Error; err != nil {
			return err
		}

		var claim model.RewardClaim
		if err := tx.Where(model.RewardClaim{Recipient: addr, Tier: tier}).
			FirstOrCreate(&claim).Error; err != nil {
			return err
		}
		return tx.Model(&model.RewardClaim{}).
			Where("recipient = ? AND tier = ?", addr, tier).
			Update("claimed", true).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("NFT reward minted: token=%d tier=%d recipient=%s", reward.TokenID, tier, addr)
	l.notifier.RewardMinted(&reward)
	return &reward, nil
}

// GetTokenTier 查询代币的奖励等级
func (l *RewardLogic) GetTokenTier(tokenID uint64) (uint8, error) {
	var reward model.NFTReward
	err := l.db.First(&reward, "token_id = ?", tokenID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrTokenNotFound
	}
	if err != nil {
		return 0, err
	}
	return reward.Tier, nil
}

// GetAvailableTiers 返回用户所有可领取且未领取的等级
func (l *RewardLogic) GetAvailableTiers(user string) ([]uint8, error) {
	count, err := l.SupportedCampaignCount(user)
	if err != nil {
		return nil, err
	}
	maxTier := GetNFTTier(count)

	tiers := make([]uint8, 0, maxTier)
	for t := model.MinRewardTier; t <= maxTier; t++ {
		claimed, err := l.HasClaimedReward(user, t)
		if err != nil {
			return nil, err
		}
		if !claimed {
			tiers = append(tiers, t)
		}
	}
	return tiers, nil
}

// GetUserRewards 返回接收者名下的所有奖励代币
func (l *RewardLogic) GetUserRewards(user string) ([]model.NFTReward, error) {
	var rewards []model.NFTReward
	err := l.db.Where("recipient = ?", model.NormalizeAddress(user)).
		Order("token_id ASC").Find(&rewards).Error
	return rewards, err
}

// SetTierMetadata 设置等级元数据URI（所有者或管理员）
func (l *RewardLogic) SetTierMetadata(caller string, tier uint8, uri string) error {
	if !l.access.IsAdminOrOwner(caller) {
		return access.ErrNotAdminOrOwner
	}
	if err := validateTier(tier); err != nil {
		return err
	}

	var record model.TierMetadata
	err := l.db.Where("tier = ?", tier).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return l.db.Create(&model.TierMetadata{Tier: tier, URI: uri}).Error
	}
	if err != nil {
		return err
	}
	return l.db.Model(&record).Update("uri", uri).Error
}

// GetTierMetadata 获取等级元数据URI
func (l *RewardLogic) GetTierMetadata(tier uint8) (string, error) {
	if err := validateTier(tier); err != nil {
		return "", err
	}
	var record model.TierMetadata
	err := l.db.Where("tier = ?", tier).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultTierMetadata[tier], nil
	}
	if err != nil {
		return "", err
	}
	return record.URI, nil
}
