package token

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/blues/cfl/internal/config"
	"github.com/blues/cfl/internal/logger"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ERC20转账ABI（只需要transferFrom）
const erc20ABI = `[
	{
		"constant": false,
		"inputs": [
			{"name": "from", "type": "address"},
			{"name": "to", "type": "address"},
			{"name": "value", "type": "uint256"}
		],
		"name": "transferFrom",
		"outputs": [{"name": "", "type": "bool"}],
		"type": "function"
	}
]`

// Client 基于ERC20合约的转账服务
type Client struct {
	client     *ethclient.Client
	privateKey *ecdsa.PrivateKey
	chainID    *big.Int
	gasLimit   uint64
	abi        abi.ABI
}

func Init(cfg config.ChainConfig) (*Client, error) {
	// 连接以太坊客户端
	client, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ethereum client: %w", err)
	}

	// 解析私钥
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	// 解析ABI
	parsedABI, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse erc20 ABI: %w", err)
	}

	return &Client{
		client:     client,
		privateKey: privateKey,
		chainID:    big.NewInt(cfg.ChainId),
		gasLimit:   cfg.GasLimit,
		abi:        parsedABI,
	}, nil
}

// TransferFrom 调用代币合约的transferFrom并等待回执
//
// 回执状态非成功即视为失败；调用是同步的，对账本而言全有或全无。
func (c *Client) TransferFrom(ctx context.Context, tokenAddress, from, to string, amount uint64) (bool, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(c.privateKey, c.chainID)
	if err != nil {
		return false, fmt.Errorf("failed to create transactor: %w", err)
	}

	data, err := c.abi.Pack("transferFrom",
		common.HexToAddress(from),
		common.HexToAddress(to),
		new(big.Int).SetUint64(amount),
	)
	if err != nil {
		return false, fmt.Errorf("failed to pack transferFrom call: %w", err)
	}

	nonce, err := c.client.PendingNonceAt(ctx, auth.From)
	if err != nil {
		return false, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get gas price: %w", err)
	}

	tx := types.NewTransaction(nonce, common.HexToAddress(tokenAddress), big.NewInt(0), c.gasLimit, gasPrice, data)
	signedTx, err := auth.Signer(auth.From, tx)
	if err != nil {
		return false, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signedTx); err != nil {
		return false, fmt.Errorf("failed to send transaction: %w", err)
	}

	receipt, err := bind.WaitMined(ctx, c.client, signedTx)
	if err != nil {
		return false, fmt.Errorf("failed to wait for transaction: %w", err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		logger.Warn("transferFrom reverted: token=%s from=%s amount=%d tx=%s",
			tokenAddress, from, amount, signedTx.Hash().Hex())
		return false, nil
	}

	logger.Info("transferFrom confirmed: token=%s from=%s to=%s amount=%d tx=%s",
		tokenAddress, from, to, amount, signedTx.Hash().Hex())
	return true, nil
}
