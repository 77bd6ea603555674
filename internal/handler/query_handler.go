package handler

import (
	"net/http"

	"github.com/blues/cfl/internal/ledger"
	"github.com/gin-gonic/gin"
)

// QueryHandler 报表查询处理器
type QueryHandler struct {
	queryLogic *ledger.QueryLogic
}

// NewQueryHandler 创建报表查询处理器
func NewQueryHandler(queryLogic *ledger.QueryLogic) *QueryHandler {
	return &QueryHandler{queryLogic: queryLogic}
}

// GetCampaigns 获取全部活动
func (h *QueryHandler) GetCampaigns(c *gin.Context) {
	campaigns, err := h.queryLogic.GetCampaigns()
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取活动列表成功", gin.H{
		"campaigns": ToCampaignResponseList(campaigns),
	})
}

// GetTopCampaigns 获取筹款额最高的活动（含并列）
func (h *QueryHandler) GetTopCampaigns(c *gin.Context) {
	campaigns, err := h.queryLogic.GetTopCampaigns()
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取热门活动成功", gin.H{
		"campaigns": ToCampaignResponseList(campaigns),
	})
}

// GetFeaturedCampaigns 获取进行中活动里筹款额最高的（含并列）
func (h *QueryHandler) GetFeaturedCampaigns(c *gin.Context) {
	campaigns, err := h.queryLogic.GetFeaturedCampaigns()
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取精选活动成功", gin.H{
		"campaigns": ToCampaignResponseList(campaigns),
	})
}

// GetUserCampaigns 获取某创建者的全部活动
func (h *QueryHandler) GetUserCampaigns(c *gin.Context) {
	campaigns, err := h.queryLogic.GetUserCampaigns(c.Param("address"))
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取用户活动成功", gin.H{
		"campaigns": ToCampaignResponseList(campaigns),
	})
}
