package handler

import (
	"errors"
	"net/http"

	"github.com/blues/cfl/internal/access"
	"github.com/blues/cfl/internal/ledger"
	"github.com/gin-gonic/gin"
)

// Response 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// FailWith 按错误类别映射HTTP状态码后返回错误响应
func FailWith(c *gin.Context, err error) {
	ErrorResponse(c, statusFor(err), err.Error())
}

var (
	authorizationErrors = []error{
		access.ErrNotOwner,
		access.ErrNotAdmin,
		access.ErrNotAdminOrOwner,
		access.ErrRemoveOwner,
		ledger.ErrNotCreator,
		ledger.ErrCreatorNotApproved,
	}
	validationErrors = []error{
		access.ErrNullAddress,
		access.ErrIndexOutOfRange,
		ledger.ErrInvalidCampaignID,
		ledger.ErrInvalidAmount,
		ledger.ErrNullToken,
		ledger.ErrNullContributor,
		ledger.ErrNullCreator,
		ledger.ErrNullRecipient,
		ledger.ErrNullSupporter,
		ledger.ErrInvalidTier,
		ledger.ErrInvalidStatus,
		ledger.ErrInvalidEndTime,
	}
	notFoundErrors = []error{
		ledger.ErrCampaignNotFound,
		ledger.ErrTokenNotFound,
	}
	conflictErrors = []error{
		access.ErrPlatformPaused,
		ledger.ErrCampaignNotActive,
		ledger.ErrCampaignNotFunding,
		ledger.ErrStatusNotMutable,
		ledger.ErrNoClaimableTier,
		ledger.ErrTierAlreadyClaimed,
		ledger.ErrTierNotReached,
	}
)

// statusFor 错误分类：授权/校验/状态冲突/外部依赖
func statusFor(err error) int {
	switch {
	case matchAny(err, authorizationErrors):
		return http.StatusForbidden
	case matchAny(err, validationErrors):
		return http.StatusBadRequest
	case matchAny(err, notFoundErrors):
		return http.StatusNotFound
	case matchAny(err, conflictErrors):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrTransferFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func matchAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
