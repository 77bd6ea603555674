package access

import (
	"errors"
)

// 权限与校验错误
var (
	ErrNotOwner        = errors.New("只有平台所有者可以执行此操作")
	ErrNotAdmin        = errors.New("只有管理员可以执行此操作")
	ErrNotAdminOrOwner = errors.New("只有所有者或管理员可以执行此操作")
	ErrRemoveOwner     = errors.New("不能移除平台所有者")
	ErrNullAddress     = errors.New("地址不能为空地址")
	ErrIndexOutOfRange = errors.New("管理员索引超出范围")
	ErrPlatformPaused  = errors.New("平台已暂停，无法执行操作")
)
