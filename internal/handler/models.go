package handler

import (
	"time"

	"github.com/blues/cfl/internal/model"
)

// 请求模型

// CreateCampaignRequest 创建活动请求
type CreateCampaignRequest struct {
	CallerAddress string `json:"caller_address" binding:"required"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Goal          uint64 `json:"goal"`
	ImageURL      string `json:"image_url"`
}

// UpdateStatusRequest 创建者状态变更请求
type UpdateStatusRequest struct {
	CallerAddress string `json:"caller_address" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

// CallerRequest 仅携带调用者身份的请求
type CallerRequest struct {
	CallerAddress string `json:"caller_address" binding:"required"`
}

// EndTimeRequest 设置结束时间请求
type EndTimeRequest struct {
	CallerAddress string `json:"caller_address" binding:"required"`
	EndTimestamp  int64  `json:"end_timestamp" binding:"required"`
}

// ContributeRequest 贡献请求
type ContributeRequest struct {
	CallerAddress string `json:"caller_address" binding:"required"`
	Amount        uint64 `json:"amount"`
	TokenAddress  string `json:"token_address"`
}

// AddSupporterRequest 补登支持者请求
type AddSupporterRequest struct {
	CallerAddress    string `json:"caller_address" binding:"required"`
	SupporterAddress string `json:"supporter_address" binding:"required"`
}

// AdminRequest 管理员增删请求
type AdminRequest struct {
	CallerAddress string `json:"caller_address" binding:"required"`
	AdminAddress  string `json:"admin_address" binding:"required"`
}

// CreatorRequest 创建者审批请求
type CreatorRequest struct {
	CallerAddress  string `json:"caller_address" binding:"required"`
	CreatorAddress string `json:"creator_address" binding:"required"`
}

// MintRequest 奖励铸造请求
type MintRequest struct {
	RecipientAddress string `json:"recipient_address" binding:"required"`
}

// TierMetadataRequest 等级元数据设置请求
type TierMetadataRequest struct {
	CallerAddress string `json:"caller_address" binding:"required"`
	URI           string `json:"uri" binding:"required"`
}

// 响应模型

// CampaignResponse 活动响应模型
type CampaignResponse struct {
	ID                uint64    `json:"id"`
	Creator           string    `json:"creator"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ImageURL          string    `json:"imageUrl"`
	Goal              uint64    `json:"goal"`
	AmountRaised      uint64    `json:"amountRaised"`
	Status            string    `json:"status"`
	IsActive          bool      `json:"isActive"`
	ContributorsCount uint64    `json:"contributorsCount"`
	RewardsIssued     bool      `json:"rewardsIssued"`
	StartTimestamp    int64     `json:"startTimestamp"`
	EndTimestamp      int64     `json:"endTimestamp"`
	PausedAt          int64     `json:"pausedAt"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// RewardResponse 奖励代币响应模型
type RewardResponse struct {
	TokenID     uint64    `json:"tokenId"`
	Recipient   string    `json:"recipient"`
	Tier        uint8     `json:"tier"`
	Claimed     bool      `json:"claimed"`
	MetadataURI string    `json:"metadataUri"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCampaignResponse 将数据库模型转换为响应模型
func ToCampaignResponse(campaign *model.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:                campaign.ID,
		Creator:           campaign.Creator,
		Title:             campaign.Title,
		Description:       campaign.Description,
		ImageURL:          campaign.ImageURL,
		Goal:              campaign.Goal,
		AmountRaised:      campaign.AmountRaised,
		Status:            string(campaign.Status),
		IsActive:          campaign.IsActive,
		ContributorsCount: campaign.ContributorsCount,
		RewardsIssued:     campaign.RewardsIssued,
		StartTimestamp:    campaign.StartTimestamp,
		EndTimestamp:      campaign.EndTimestamp,
		PausedAt:          campaign.PausedAt,
		CreatedAt:         campaign.CreatedAt,
		UpdatedAt:         campaign.UpdatedAt,
	}
}

// ToCampaignResponseList 批量转换活动响应模型
func ToCampaignResponseList(campaigns []model.Campaign) []CampaignResponse {
	result := make([]CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		result[i] = ToCampaignResponse(&campaign)
	}
	return result
}

// ToRewardResponse 将奖励模型转换为响应模型
func ToRewardResponse(reward *model.NFTReward) RewardResponse {
	return RewardResponse{
		TokenID:     reward.TokenID,
		Recipient:   reward.Recipient,
		Tier:        reward.Tier,
		Claimed:     reward.Claimed,
		MetadataURI: reward.MetadataURI,
		CreatedAt:   reward.CreatedAt,
	}
}

// ToRewardResponseList 批量转换奖励响应模型
func ToRewardResponseList(rewards []model.NFTReward) []RewardResponse {
	result := make([]RewardResponse, len(rewards))
	for i, reward := range rewards {
		result[i] = ToRewardResponse(&reward)
	}
	return result
}
