package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/cfl/internal/ledger"
	"github.com/gin-gonic/gin"
)

// RewardHandler 奖励处理器
type RewardHandler struct {
	rewardLogic *ledger.RewardLogic
}

// NewRewardHandler 创建奖励处理器
func NewRewardHandler(rewardLogic *ledger.RewardLogic) *RewardHandler {
	return &RewardHandler{rewardLogic: rewardLogic}
}

// parseTier 解析路径中的奖励等级
func parseTier(c *gin.Context) (uint8, bool) {
	tier, err := strconv.ParseUint(c.Param("tier"), 10, 8)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的奖励等级")
		return 0, false
	}
	return uint8(tier), true
}

// GetTierForCount 按支持活动数计算等级（纯函数入口）
func (h *RewardHandler) GetTierForCount(c *gin.Context) {
	count, err := strconv.ParseUint(c.Param("count"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动数量")
		return
	}

	SuccessResponse(c, http.StatusOK, "查询成功", gin.H{
		"campaign_count": count,
		"tier":           ledger.GetNFTTier(count),
	})
}

// GetAvailableTiers 获取用户可领取的等级列表
func (h *RewardHandler) GetAvailableTiers(c *gin.Context) {
	address := c.Param("address")
	tiers, err := h.rewardLogic.GetAvailableTiers(address)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "查询成功", gin.H{
		"address": address,
		"tiers":   tiers,
	})
}

// GetUserRewards 获取用户名下的奖励代币
func (h *RewardHandler) GetUserRewards(c *gin.Context) {
	rewards, err := h.rewardLogic.GetUserRewards(c.Param("address"))
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "查询成功", gin.H{
		"rewards": ToRewardResponseList(rewards),
	})
}

// MintReward 铸造奖励
func (h *RewardHandler) MintReward(c *gin.Context) {
	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	reward, err := h.rewardLogic.MintNFTReward(req.RecipientAddress)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "奖励铸造成功", ToRewardResponse(reward))
}

// HasClaimed 查询某等级是否已领取
func (h *RewardHandler) HasClaimed(c *gin.Context) {
	tier, ok := parseTier(c)
	if !ok {
		return
	}

	claimed, err := h.rewardLogic.HasClaimedReward(c.Param("address"), tier)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "查询成功", gin.H{"claimed": claimed})
}

// CanClaim 查询某等级是否可领取
func (h *RewardHandler) CanClaim(c *gin.Context) {
	tier, ok := parseTier(c)
	if !ok {
		return
	}

	eligible, err := h.rewardLogic.CanClaimTierReward(c.Param("address"), tier)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "查询成功", gin.H{"can_claim": eligible})
}

// GetTokenTier 查询代币等级
func (h *RewardHandler) GetTokenTier(c *gin.Context) {
	tokenID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的代币ID")
		return
	}

	tier, err := h.rewardLogic.GetTokenTier(tokenID)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "查询成功", gin.H{
		"token_id": tokenID,
		"tier":     tier,
	})
}

// SetTierMetadata 设置等级元数据
func (h *RewardHandler) SetTierMetadata(c *gin.Context) {
	tier, ok := parseTier(c)
	if !ok {
		return
	}

	var req TierMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	if err := h.rewardLogic.SetTierMetadata(req.CallerAddress, tier, req.URI); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "等级元数据已更新", nil)
}

// GetTierMetadata 获取等级元数据
func (h *RewardHandler) GetTierMetadata(c *gin.Context) {
	tier, ok := parseTier(c)
	if !ok {
		return
	}

	uri, err := h.rewardLogic.GetTierMetadata(tier)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "查询成功", gin.H{
		"tier": tier,
		"uri":  uri,
	})
}
