package token

import (
	"context"
)

// TransferService 外部代币转账服务
//
// 账本只关心 transfer_from 的成败：返回 false 或错误都视为转账失败，
// 调用方必须使整个操作失败且不产生任何状态变更。
type TransferService interface {
	TransferFrom(ctx context.Context, tokenAddress, from, to string, amount uint64) (bool, error)
}
