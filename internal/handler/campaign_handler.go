package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/cfl/internal/ledger"
	"github.com/blues/cfl/internal/model"
	"github.com/gin-gonic/gin"
)

// CampaignHandler 活动处理器
type CampaignHandler struct {
	campaignLogic *ledger.CampaignLogic
}

// NewCampaignHandler 创建活动处理器
func NewCampaignHandler(campaignLogic *ledger.CampaignLogic) *CampaignHandler {
	return &CampaignHandler{campaignLogic: campaignLogic}
}

// parseCampaignID 解析路径中的活动ID
func parseCampaignID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return 0, false
	}
	return id, true
}

// CreateCampaign 创建活动
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	campaign, err := h.campaignLogic.CreateCampaign(req.CallerAddress, req.Title, req.Description, req.Goal, req.ImageURL)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "活动创建成功", ToCampaignResponse(campaign))
}

// GetCampaign 获取活动详情
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.campaignLogic.GetCampaign(id)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取活动成功", ToCampaignResponse(campaign))
}

// UpdateCampaignStatus 创建者路径的状态变更
func (h *CampaignHandler) UpdateCampaignStatus(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	if err := h.campaignLogic.UpdateCampaignStatus(req.CallerAddress, id, model.CampaignStatus(req.Status)); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动状态已更新", nil)
}

// SetCampaignEndTime 设置活动结束时间
func (h *CampaignHandler) SetCampaignEndTime(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req EndTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	if err := h.campaignLogic.SetCampaignEndTime(req.CallerAddress, id, req.EndTimestamp); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动结束时间已设置", nil)
}

// PauseCampaign 管理员路径的强制暂停
func (h *CampaignHandler) PauseCampaign(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	if err := h.campaignLogic.PauseCampaign(req.CallerAddress, id); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动已暂停", nil)
}

// UnpauseCampaign 管理员路径的强制恢复
func (h *CampaignHandler) UnpauseCampaign(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	var req CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	if err := h.campaignLogic.UnpauseCampaign(req.CallerAddress, id); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动已恢复", nil)
}

// GetCampaignStats 获取活动统计（仅创建者）
func (h *CampaignHandler) GetCampaignStats(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	stats, err := h.campaignLogic.GetCampaignStats(c.Query("caller"), id)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取活动统计成功", stats)
}

// AdminGetCampaignStats 获取活动统计（仅管理员）
func (h *CampaignHandler) AdminGetCampaignStats(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}

	stats, err := h.campaignLogic.AdminGetCampaignStats(c.Query("caller"), id)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取活动统计成功", stats)
}
