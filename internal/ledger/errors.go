package ledger

import (
	"errors"
)

// 校验失败
var (
	ErrInvalidCampaignID = errors.New("活动ID必须大于0")
	ErrInvalidAmount     = errors.New("贡献金额必须大于0")
	ErrNullToken         = errors.New("代币地址不能为空地址")
	ErrNullContributor   = errors.New("贡献者地址不能为空地址")
	ErrNullCreator       = errors.New("创建者地址不能为空地址")
	ErrNullRecipient     = errors.New("接收者地址不能为空地址")
	ErrNullSupporter     = errors.New("支持者地址不能为空地址")
	ErrCampaignNotFound  = errors.New("活动不存在")
	ErrTokenNotFound     = errors.New("NFT代币不存在")
	ErrInvalidTier       = errors.New("奖励等级必须在1到5之间")
	ErrInvalidStatus     = errors.New("无效的活动状态")
	ErrInvalidEndTime    = errors.New("结束时间必须大于0")
)

// 授权失败
var (
	ErrNotCreator         = errors.New("只有活动创建者可以执行此操作")
	ErrCreatorNotApproved = errors.New("创建者未通过审批，无法创建活动")
)

// 状态冲突
var (
	ErrCampaignNotActive   = errors.New("活动未激活")
	ErrCampaignNotFunding  = errors.New("活动不在进行状态，无法接受贡献")
	ErrStatusNotMutable    = errors.New("当前状态不允许创建者变更")
	ErrNoClaimableTier     = errors.New("没有可领取的奖励等级")
	ErrTierAlreadyClaimed  = errors.New("该等级奖励已领取")
	ErrTierNotReached      = errors.New("支持的活动数未达到该等级")
)

// 外部依赖失败
var (
	ErrTransferFailed = errors.New("代币转账失败")
)
