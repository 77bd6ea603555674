package handler

import (
	"net/http"

	"github.com/blues/cfl/internal/ledger"
	"github.com/gin-gonic/gin"
)

// ContributeHandler 贡献处理器
type ContributeHandler struct {
	contributionLogic *ledger.ContributionLogic
}

// NewContributeHandler 创建贡献处理器
func NewContributeHandler(contributionLogic *ledger.ContributionLogic) *ContributeHandler {
	return &ContributeHandler{contributionLogic: contributionLogic}
}

// Contribute 处理贡献
func (h *ContributeHandler) Contribute(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	record, err := h.contributionLogic.Contribute(c.Request.Context(), req.CallerAddress, id, req.Amount, req.TokenAddress)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "贡献处理成功", gin.H{
		"campaign_id": record.CampaignID,
		"contributor": record.Contributor,
		"cumulative":  record.Amount,
	})
}

// GetCampaignContributions 获取活动贡献总额
func (h *ContributeHandler) GetCampaignContributions(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	total, err := h.contributionLogic.GetCampaignContributions(id)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取活动贡献总额成功", gin.H{
		"campaign_id": id,
		"total":       total,
	})
}

// GetContribution 获取某贡献者在活动的累计贡献
func (h *ContributeHandler) GetContribution(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	address := c.Param("address")
	amount, err := h.contributionLogic.GetContribution(id, address)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取贡献成功", gin.H{
		"campaign_id": id,
		"contributor": address,
		"amount":      amount,
	})
}

// GetUserContributions 获取贡献者跨活动总额
func (h *ContributeHandler) GetUserContributions(c *gin.Context) {
	address := c.Param("address")
	total, err := h.contributionLogic.GetUserContributions(address)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取用户贡献总额成功", gin.H{
		"contributor": address,
		"total":       total,
	})
}

// AddSupporter 创建者手工补登支持者
func (h *ContributeHandler) AddSupporter(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req AddSupporterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	if err := h.contributionLogic.AddSupporter(req.CallerAddress, id, req.SupporterAddress); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "支持者已登记", nil)
}

// GetSupporterCount 获取活动支持者计数
func (h *ContributeHandler) GetSupporterCount(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	count, err := h.contributionLogic.GetSupporterCount(id)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取支持者计数成功", gin.H{
		"campaign_id": id,
		"count":       count,
	})
}
