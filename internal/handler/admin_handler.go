package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/cfl/internal/access"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理员与平台治理处理器
type AdminHandler struct {
	access *access.Control
}

// NewAdminHandler 创建管理员处理器
func NewAdminHandler(ac *access.Control) *AdminHandler {
	return &AdminHandler{access: ac}
}

// AddAdmin 添加管理员
func (h *AdminHandler) AddAdmin(c *gin.Context) {
	var req AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	if err := h.access.AddAdmin(req.CallerAddress, req.AdminAddress); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "管理员已添加", nil)
}

// RemoveAdmin 移除管理员
func (h *AdminHandler) RemoveAdmin(c *gin.Context) {
	var req CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	if err := h.access.RemoveAdmin(req.CallerAddress, c.Param("address")); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "管理员已移除", nil)
}

// GetAllAdmins 获取全部历史管理员（含已移除，插入倒序）
func (h *AdminHandler) GetAllAdmins(c *gin.Context) {
	admins, err := h.access.GetAllAdmins()
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取管理员列表成功", gin.H{"admins": admins})
}

// GetAdminCount 获取历史管理员数量
func (h *AdminHandler) GetAdminCount(c *gin.Context) {
	count, err := h.access.GetAdminCount()
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取管理员数量成功", gin.H{"count": count})
}

// GetAdminByIndex 按插入顺序获取管理员
func (h *AdminHandler) GetAdminByIndex(c *gin.Context) {
	index, err := strconv.ParseInt(c.Param("index"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的索引")
		return
	}

	address, err := h.access.GetAdminByIndex(index)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取管理员成功", gin.H{"address": address})
}

// CheckAdmin 查询地址是否为在任管理员
func (h *AdminHandler) CheckAdmin(c *gin.Context) {
	address := c.Param("address")
	SuccessResponse(c, http.StatusOK, "查询成功", gin.H{
		"address":           address,
		"is_admin":          h.access.IsAdmin(address),
		"is_admin_or_owner": h.access.IsAdminOrOwner(address),
	})
}

// GetOwner 获取平台所有者
func (h *AdminHandler) GetOwner(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "查询成功", gin.H{"owner": h.access.GetOwner()})
}

// ApproveCreator 审批创建者
func (h *AdminHandler) ApproveCreator(c *gin.Context) {
	var req CreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	if err := h.access.ApproveCreator(req.CallerAddress, req.CreatorAddress); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "创建者已审批", nil)
}

// RevokeCreator 撤销创建者审批
func (h *AdminHandler) RevokeCreator(c *gin.Context) {
	var req CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	if err := h.access.RevokeCreator(req.CallerAddress, c.Param("address")); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "创建者审批已撤销", nil)
}

// CheckCreator 查询创建者审批状态
func (h *AdminHandler) CheckCreator(c *gin.Context) {
	address := c.Param("address")
	SuccessResponse(c, http.StatusOK, "查询成功", gin.H{
		"address":  address,
		"approved": h.access.IsApprovedCreator(address),
	})
}

// PausePlatform 暂停平台
func (h *AdminHandler) PausePlatform(c *gin.Context) {
	var req CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	if err := h.access.PausePlatform(req.CallerAddress); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "平台已暂停", nil)
}

// UnpausePlatform 恢复平台
func (h *AdminHandler) UnpausePlatform(c *gin.Context) {
	var req CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的请求参数: "+err.Error())
		return
	}

	if err := h.access.UnpausePlatform(req.CallerAddress); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "平台已恢复", nil)
}

// GetPlatformStatus 查询平台运行状态
func (h *AdminHandler) GetPlatformStatus(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "查询成功", gin.H{"paused": h.access.IsPaused()})
}
