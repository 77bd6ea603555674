package model

import (
	"github.com/ethereum/go-ethereum/common"
)

// NormalizeAddress 将地址规范化为EIP-55校验和格式，作为所有存储键使用
func NormalizeAddress(addr string) string {
	return common.HexToAddress(addr).Hex()
}

// IsNullAddress 判断地址是否为空（非法十六进制或零地址）
func IsNullAddress(addr string) bool {
	if !common.IsHexAddress(addr) {
		return true
	}
	return common.HexToAddress(addr) == (common.Address{})
}

// SameAddress 比较两个地址是否指向同一身份
func SameAddress(a, b string) bool {
	return common.HexToAddress(a) == common.HexToAddress(b)
}
