package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/pkg/config"
	"github.com/adiboy-23/fun-pump/pkg/sale"
	"github.com/adiboy-23/fun-pump/pkg/wallet"
)

// Connect asks the wallet for account access and returns the first account.
func (g *Gateway) Connect(ctx context.Context) (common.Address, error) {
	if g.wallet == nil {
		return common.Address{}, sale.ErrNoWalletFound
	}
	if !g.connectMu.TryLock() {
		return common.Address{}, sale.ErrConnectInProgress
	}
	defer g.connectMu.Unlock()

	if err := g.wallet.RequestPermissions(ctx); err != nil {
		return common.Address{}, connectError(err)
	}
	accounts, err := g.wallet.RequestAccounts(ctx)
	if err != nil {
		return common.Address{}, connectError(err)
	}
	if len(accounts) == 0 {
		return common.Address{}, fmt.Errorf("%w: wallet returned no accounts", sale.ErrPermissionDenied)
	}

	g.mu.Lock()
	g.account = accounts[0]
	g.mu.Unlock()

	g.logger.Info("Wallet connected", zap.String("account", accounts[0].Hex()))
	return accounts[0], nil
}

// Account returns the connected account, or the zero address before Connect.
func (g *Gateway) Account() common.Address {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.account
}

// CurrentNetwork returns the chain the wallet is on.
func (g *Gateway) CurrentNetwork(ctx context.Context) (uint64, error) {
	if g.wallet == nil {
		return 0, sale.ErrNoWalletFound
	}
	id, err := g.wallet.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", sale.ErrNoWalletFound, err)
	}
	return id, nil
}

// SwitchToExpectedNetwork moves the wallet to chainID, registering the chain
// with the wallet first if it does not know it.
func (g *Gateway) SwitchToExpectedNetwork(ctx context.Context, chainID uint64) error {
	network, ok := g.registry.Lookup(chainID)
	if !ok {
		return fmt.Errorf("%w: chain %d is not registered", sale.ErrUnsupportedChain, chainID)
	}
	if g.wallet == nil {
		return sale.ErrNoWalletFound
	}
	if !g.connectMu.TryLock() {
		return sale.ErrConnectInProgress
	}
	defer g.connectMu.Unlock()

	err := g.wallet.SwitchChain(ctx, chainID)
	if err == nil {
		g.logger.Info("Switched network", zap.Uint64("chain_id", chainID))
		return nil
	}
	if wallet.CodeOf(err) != wallet.CodeUnrecognizedChain {
		return fmt.Errorf("%w: %w", sale.ErrNetworkSwitchRejected, err)
	}

	g.logger.Info("Registering network with wallet",
		zap.Uint64("chain_id", chainID),
		zap.String("name", network.Name))

	if err := g.wallet.AddChain(ctx, addChainParams(network)); err != nil {
		return fmt.Errorf("%w: %w", sale.ErrNetworkRegistrationFailed, err)
	}
	if err := g.wallet.SwitchChain(ctx, chainID); err != nil {
		return fmt.Errorf("%w: %w", sale.ErrNetworkSwitchRejected, err)
	}

	g.logger.Info("Switched network", zap.Uint64("chain_id", chainID))
	return nil
}

func addChainParams(n config.Network) wallet.AddChainParams {
	return wallet.AddChainParams{
		ChainID:   n.ChainIDHex(),
		ChainName: n.Name,
		NativeCurrency: wallet.Currency{
			Name:     n.NativeCurrency.Name,
			Symbol:   n.NativeCurrency.Symbol,
			Decimals: n.NativeCurrency.Decimals,
		},
		RPCURLs:           n.RPCURLs,
		BlockExplorerURLs: n.ExplorerURLs,
	}
}

func connectError(err error) error {
	switch wallet.CodeOf(err) {
	case wallet.CodeUserRejected, wallet.CodeUnauthorized:
		return fmt.Errorf("%w: %w", sale.ErrPermissionDenied, err)
	default:
		return fmt.Errorf("%w: %w", sale.ErrNoWalletFound, err)
	}
}
