package event

import (
	"encoding/json"
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/blues/cfl/internal/logger"
	"github.com/blues/cfl/internal/model"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
)

// Notifier 操作通知器
//
// 每条通知发布到进程内总线并由协程池落库为Event记录。
// 通知在成功提交的变更之后发出，失败的操作不产生通知。
type Notifier struct {
	db   *gorm.DB
	bus  EventBus.Bus
	pool *ants.Pool
}

// NewNotifier 创建通知器
func NewNotifier(db *gorm.DB) (*Notifier, error) {
	pool, err := ants.NewPool(8)
	if err != nil {
		return nil, fmt.Errorf("failed to create notifier pool: %w", err)
	}

	n := &Notifier{
		db:   db,
		bus:  EventBus.New(),
		pool: pool,
	}

	topics := []string{
		model.EventCampaignCreated,
		model.EventCampaignStatusChanged,
		model.EventContributionProcessed,
		model.EventSupporterAdded,
		model.EventRewardMinted,
	}
	for _, topic := range topics {
		if err := n.bus.Subscribe(topic, n.persist); err != nil {
			pool.Release()
			return nil, fmt.Errorf("failed to subscribe topic %s: %w", topic, err)
		}
	}

	return n, nil
}

// Close 释放协程池
func (n *Notifier) Close() {
	n.pool.Release()
}

// Bus 暴露总线供其他组件订阅
func (n *Notifier) Bus() EventBus.Bus {
	return n.bus
}

// persist 落库订阅者
func (n *Notifier) persist(evt *model.Event) {
	task := func() {
		if err := n.db.Create(evt).Error; err != nil {
			logger.Error("Failed to persist event %s (%s): %v", evt.EventID, evt.EventType, err)
			return
		}
		logger.Debug("Event %s recorded for campaign %d", evt.EventType, evt.CampaignID)
	}
	if err := n.pool.Submit(task); err != nil {
		// 池不可用时退化为同步写入
		logger.Warn("Notifier pool unavailable, persisting inline: %v", err)
		task()
	}
}

// publish 组装并发布事件
func (n *Notifier) publish(eventType string, campaignID uint64, actor string, amount uint64, payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal event payload: %v", err)
		data = []byte("{}")
	}

	evt := &model.Event{
		EventID:    uuid.NewString(),
		CampaignID: campaignID,
		EventType:  eventType,
		Actor:      actor,
		Amount:     amount,
		Data:       string(data),
	}
	n.bus.Publish(eventType, evt)
}

// CampaignCreated 活动创建通知
func (n *Notifier) CampaignCreated(campaign *model.Campaign) {
	n.publish(model.EventCampaignCreated, campaign.ID, campaign.Creator, 0, map[string]interface{}{
		"title": campaign.Title,
		"goal":  campaign.Goal,
	})
}

// CampaignStatusChanged 活动状态变更通知
func (n *Notifier) CampaignStatusChanged(campaignID uint64, actor string, status model.CampaignStatus) {
	n.publish(model.EventCampaignStatusChanged, campaignID, actor, 0, map[string]interface{}{
		"status": string(status),
	})
}

// ContributionProcessed 贡献完成通知
func (n *Notifier) ContributionProcessed(campaignID uint64, contributor string, amount uint64) {
	n.publish(model.EventContributionProcessed, campaignID, contributor, amount, map[string]interface{}{
		"contributor": contributor,
		"amount":      amount,
	})
}

// SupporterAdded 支持者补登通知
func (n *Notifier) SupporterAdded(campaignID uint64, supporter string) {
	n.publish(model.EventSupporterAdded, campaignID, supporter, 0, map[string]interface{}{
		"supporter": supporter,
	})
}

// RewardMinted 奖励铸造通知
func (n *Notifier) RewardMinted(reward *model.NFTReward) {
	n.publish(model.EventRewardMinted, 0, reward.Recipient, 0, map[string]interface{}{
		"token_id": reward.TokenID,
		"tier":     reward.Tier,
		"uri":      reward.MetadataURI,
	})
}
