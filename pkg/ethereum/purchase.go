package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/internal/metrics"
	"github.com/adiboy-23/fun-pump/pkg/sale"
	"github.com/adiboy-23/fun-pump/pkg/wallet"
)

// SubmitPurchase sends buy(token, amountUnits * 1e18) with totalCost attached.
// The wallet must be on the chain the sale was read from.
func (g *Gateway) SubmitPurchase(ctx context.Context, id sale.TokenID, amountUnits uint64, totalCost *big.Int) (sale.TxHandle, error) {
	if g.wallet == nil {
		return sale.TxHandle{}, sale.ErrNoWalletFound
	}
	if totalCost == nil || totalCost.Sign() < 0 {
		return sale.TxHandle{}, fmt.Errorf("%w: invalid purchase value %v", sale.ErrChainWrite, totalCost)
	}

	_, network, err := g.factory(ctx)
	if err != nil {
		return sale.TxHandle{}, err
	}

	walletChain, err := g.wallet.ChainID(ctx)
	if err != nil {
		return sale.TxHandle{}, fmt.Errorf("%w: %w", sale.ErrNoWalletFound, err)
	}
	if walletChain != network.ChainID {
		return sale.TxHandle{}, g.unsupported(walletChain)
	}

	from, err := g.sender(ctx)
	if err != nil {
		return sale.TxHandle{}, err
	}

	token, err := g.tokenAddress(ctx, network.ChainID, id)
	if err != nil {
		return sale.TxHandle{}, err
	}

	data, err := g.abi.Pack("buy", token, sale.UnitsToBaseUnits(amountUnits))
	if err != nil {
		return sale.TxHandle{}, fmt.Errorf("%w: failed to pack buy: %w", sale.ErrChainWrite, err)
	}

	to := network.FactoryAddress()
	req := wallet.TxRequest{
		From:  from,
		To:    &to,
		Value: (*hexutil.Big)(new(big.Int).Set(totalCost)),
		Data:  data,
	}
	if g.cfg.gasLimit > 0 {
		gas := hexutil.Uint64(g.cfg.gasLimit)
		req.Gas = &gas
	}

	g.logger.Info("Submitting purchase",
		zap.Stringer("token_id", id),
		zap.String("token", token.Hex()),
		zap.Uint64("amount_units", amountUnits),
		zap.String("value", totalCost.String()),
		zap.String("from", from.Hex()))

	hash, err := g.wallet.SendTransaction(ctx, req)
	if err != nil {
		metrics.TransactionsSent.WithLabelValues("error").Inc()
		return sale.TxHandle{}, sendError(err)
	}
	metrics.TransactionsSent.WithLabelValues("success").Inc()

	g.logger.Info("Purchase transaction submitted", zap.String("tx_hash", hash.Hex()))

	return sale.TxHandle{Hash: hash, From: from, ChainID: network.ChainID}, nil
}

// sender returns the connected account. Without one it looks up accounts the
// wallet already authorized, which never prompts, and fails if there are none.
func (g *Gateway) sender(ctx context.Context) (common.Address, error) {
	if acct := g.Account(); acct != (common.Address{}) {
		return acct, nil
	}
	if !g.connectMu.TryLock() {
		return common.Address{}, sale.ErrConnectInProgress
	}
	defer g.connectMu.Unlock()

	accounts, err := g.wallet.Accounts(ctx)
	if err != nil {
		return common.Address{}, connectError(err)
	}
	if len(accounts) == 0 {
		return common.Address{}, fmt.Errorf("%w: wallet is not connected", sale.ErrPermissionDenied)
	}
	g.mu.Lock()
	g.account = accounts[0]
	g.mu.Unlock()
	return accounts[0], nil
}

func sendError(err error) error {
	if wallet.CodeOf(err) == wallet.CodeUserRejected {
		return fmt.Errorf("%w: %w", sale.ErrSignatureRejected, err)
	}
	if strings.Contains(strings.ToLower(err.Error()), "insufficient funds") {
		return fmt.Errorf("%w: %w", sale.ErrInsufficientFunds, err)
	}
	return fmt.Errorf("%w: %w", sale.ErrChainWrite, err)
}

// AwaitConfirmation polls for the receipt of h until it is mined or the
// confirmation timeout elapses.
func (g *Gateway) AwaitConfirmation(ctx context.Context, h sale.TxHandle) error {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.confirmationTimeout)
	defer cancel()

	start := time.Now()
	ticker := time.NewTicker(g.cfg.receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := g.backend.TransactionReceipt(ctx, h.Hash)
		switch {
		case err == nil:
			if receipt.Status == types.ReceiptStatusFailed {
				metrics.ConfirmationWait.WithLabelValues("reverted").Observe(time.Since(start).Seconds())
				return fmt.Errorf("%w: %s in block %v", sale.ErrTransactionReverted, h.Hash.Hex(), receipt.BlockNumber)
			}
			metrics.ConfirmationWait.WithLabelValues("success").Observe(time.Since(start).Seconds())
			g.logger.Info("Purchase confirmed",
				zap.String("tx_hash", h.Hash.Hex()),
				zap.Uint64("gas_used", receipt.GasUsed))
			return nil
		case errors.Is(err, ethereum.NotFound):
		case ctx.Err() == nil:
			g.logger.Warn("Failed to get receipt", zap.String("tx_hash", h.Hash.Hex()), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				metrics.ConfirmationWait.WithLabelValues("timeout").Observe(time.Since(start).Seconds())
				return fmt.Errorf("%w: %s", sale.ErrTransactionTimedOut, h.Hash.Hex())
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
