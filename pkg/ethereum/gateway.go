// Package ethereum is the narrow read/write surface over the sale factory contract.
// Reads go to the configured node; writes go through the wallet provider.
package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/pkg/config"
	"github.com/adiboy-23/fun-pump/pkg/ethereum/contracts"
	"github.com/adiboy-23/fun-pump/pkg/sale"
	"github.com/adiboy-23/fun-pump/pkg/wallet"
)

// Backend is the node surface the gateway reads from. *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractCaller
	ChainID(ctx context.Context) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type tokenKey struct {
	chainID uint64
	id      sale.TokenID
}

// Gateway reads sale state and submits purchases.
type Gateway struct {
	backend  Backend
	wallet   wallet.Provider
	registry *config.ChainRegistry
	abi      *abi.ABI
	cfg      settings
	logger   *zap.Logger

	// guards Connect and SwitchToExpectedNetwork
	connectMu sync.Mutex

	mu        sync.Mutex
	nodeChain uint64
	callers   map[uint64]*contracts.FactoryCaller
	tokens    map[tokenKey]common.Address
	account   common.Address

	closers []func()
}

// NewGateway creates a gateway. provider may be nil, in which case only reads are possible.
func NewGateway(backend Backend, provider wallet.Provider, registry *config.ChainRegistry, opts ...Option) (*Gateway, error) {
	if registry == nil {
		registry = config.DefaultChainRegistry()
	}
	parsed, err := contracts.FactoryMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse factory abi: %w", err)
	}

	s := applyOptions(opts)
	if s.readRetryMax == 0 {
		s.readRetryMax = 1
	}

	return &Gateway{
		backend:  backend,
		wallet:   provider,
		registry: registry,
		abi:      parsed,
		cfg:      s,
		logger:   s.logger,
		callers:  make(map[uint64]*contracts.FactoryCaller),
		tokens:   make(map[tokenKey]common.Address),
	}, nil
}

// Dial connects to the node in cfg and to the configured wallet. A wallet endpoint
// takes precedence over a private key; with neither, the gateway is read-only.
func Dial(ctx context.Context, cfg *config.EthereumConfig, registry *config.ChainRegistry, logger *zap.Logger) (*Gateway, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	var provider wallet.Provider
	switch {
	case cfg.WalletRPCURL != "":
		provider, err = wallet.DialRPC(ctx, cfg.WalletRPCURL)
	case cfg.PrivateKey != "":
		provider, err = wallet.NewKeyedProvider(client, cfg.PrivateKey, chainID.Uint64(), cfg.GasLimit, logger)
	default:
		logger.Warn("No wallet configured, purchases are disabled")
	}
	if err != nil {
		client.Close()
		return nil, err
	}

	gw, err := NewGateway(client, provider, registry,
		WithLogger(logger),
		WithReadRetry(cfg.ReadRetryMax, defaultReadRetryInterval),
		WithReadRateLimit(cfg.ReadRateLimit, cfg.ReadRateBurst),
		WithReceiptPolling(cfg.ReceiptPollInterval, cfg.ConfirmationTimeout),
		WithGasLimit(cfg.GasLimit),
	)
	if err != nil {
		client.Close()
		return nil, err
	}
	if provider != nil {
		gw.closers = append(gw.closers, provider.Close)
	}
	gw.closers = append(gw.closers, client.Close)

	logger.Info("Connected to Ethereum",
		zap.Uint64("chain_id", chainID.Uint64()),
		zap.String("rpc_url", cfg.RPCURL),
		zap.Bool("wallet", provider != nil))

	return gw, nil
}

// Close releases the node and wallet connections opened by Dial.
func (g *Gateway) Close() {
	for _, c := range g.closers {
		c()
	}
}

// Registry returns the chain registry the gateway resolves factories from.
func (g *Gateway) Registry() *config.ChainRegistry {
	return g.registry
}

// HasWallet reports whether purchases can be signed.
func (g *Gateway) HasWallet() bool {
	return g.wallet != nil
}

// NodeChainID returns the chain the node serves. It is resolved once.
func (g *Gateway) NodeChainID(ctx context.Context) (uint64, error) {
	g.mu.Lock()
	cached := g.nodeChain
	g.mu.Unlock()
	if cached != 0 {
		return cached, nil
	}

	id, err := retryRead(ctx, g, "chainId", func() (*big.Int, error) {
		return g.backend.ChainID(ctx)
	})
	if err != nil {
		return 0, fmt.Errorf("%w: chainId: %w", sale.ErrChainRead, err)
	}

	g.mu.Lock()
	g.nodeChain = id.Uint64()
	g.mu.Unlock()
	return id.Uint64(), nil
}

// factory returns the factory binding for the node's chain.
func (g *Gateway) factory(ctx context.Context) (*contracts.FactoryCaller, config.Network, error) {
	chainID, err := g.NodeChainID(ctx)
	if err != nil {
		return nil, config.Network{}, err
	}
	network, ok := g.registry.Lookup(chainID)
	if !ok {
		return nil, config.Network{}, g.unsupported(chainID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.callers[chainID]; ok {
		return c, network, nil
	}
	c, err := contracts.NewFactoryCaller(network.FactoryAddress(), g.backend)
	if err != nil {
		return nil, config.Network{}, fmt.Errorf("failed to bind factory: %w", err)
	}
	g.callers[chainID] = c
	return c, network, nil
}

func (g *Gateway) unsupported(current uint64) error {
	expected := g.registry.ExpectedNetwork()
	return fmt.Errorf("%w: please connect to %s (chain id %d), you are currently on network %d",
		sale.ErrUnsupportedChain, expected.Name, expected.ChainID, current)
}

// ReadSaleConstants reads the factory-wide target, token limit and listing fee.
func (g *Gateway) ReadSaleConstants(ctx context.Context) (sale.Constants, error) {
	caller, network, err := g.factory(ctx)
	if err != nil {
		return sale.Constants{}, err
	}
	opts := &bind.CallOpts{Context: ctx}

	target, err := retryRead(ctx, g, "TARGET", func() (*big.Int, error) { return caller.TARGET(opts) })
	if err != nil {
		return sale.Constants{}, fmt.Errorf("%w: TARGET: %w", sale.ErrChainRead, err)
	}
	limit, err := retryRead(ctx, g, "TOKEN_LIMIT", func() (*big.Int, error) { return caller.TOKENLIMIT(opts) })
	if err != nil {
		return sale.Constants{}, fmt.Errorf("%w: TOKEN_LIMIT: %w", sale.ErrChainRead, err)
	}
	fee, err := retryRead(ctx, g, "fee", func() (*big.Int, error) { return caller.Fee(opts) })
	if err != nil {
		return sale.Constants{}, fmt.Errorf("%w: fee: %w", sale.ErrChainRead, err)
	}

	return sale.Constants{
		ChainID:    network.ChainID,
		Target:     target,
		TokenLimit: limit,
		Fee:        fee,
	}, nil
}

// ReadSaleSnapshot reads one sale by factory index.
func (g *Gateway) ReadSaleSnapshot(ctx context.Context, id sale.TokenID) (sale.Snapshot, error) {
	caller, network, err := g.factory(ctx)
	if err != nil {
		return sale.Snapshot{}, err
	}
	opts := &bind.CallOpts{Context: ctx}
	index := new(big.Int).SetUint64(uint64(id))

	ts, err := retryRead(ctx, g, "getTokenSale", func() (contracts.FactoryTokenSale, error) {
		return caller.GetTokenSale(opts, index)
	})
	if err != nil {
		return sale.Snapshot{}, fmt.Errorf("%w: getTokenSale(%d): %w", sale.ErrChainRead, id, err)
	}

	g.mu.Lock()
	g.tokens[tokenKey{network.ChainID, id}] = ts.Token
	g.mu.Unlock()

	return sale.Snapshot{
		ID:      id,
		Token:   ts.Token,
		Name:    ts.Name,
		Creator: ts.Creator,
		Sold:    ts.Sold,
		Raised:  ts.Raised,
		IsOpen:  ts.IsOpen,
	}, nil
}

// ReadUnitCost reads the price of the next unit after sold units.
func (g *Gateway) ReadUnitCost(ctx context.Context, sold *big.Int) (*big.Int, error) {
	caller, _, err := g.factory(ctx)
	if err != nil {
		return nil, err
	}
	opts := &bind.CallOpts{Context: ctx}

	cost, err := retryRead(ctx, g, "getCost", func() (*big.Int, error) { return caller.GetCost(opts, sold) })
	if err != nil {
		return nil, fmt.Errorf("%w: getCost: %w", sale.ErrChainRead, err)
	}
	return cost, nil
}

// ReadTotalSales reads how many sales the factory has created.
func (g *Gateway) ReadTotalSales(ctx context.Context) (uint64, error) {
	caller, _, err := g.factory(ctx)
	if err != nil {
		return 0, err
	}
	opts := &bind.CallOpts{Context: ctx}

	total, err := retryRead(ctx, g, "totalTokens", func() (*big.Int, error) { return caller.TotalTokens(opts) })
	if err != nil {
		return 0, fmt.Errorf("%w: totalTokens: %w", sale.ErrChainRead, err)
	}
	if !total.IsUint64() {
		return 0, fmt.Errorf("%w: totalTokens out of range: %s", sale.ErrChainRead, total)
	}
	return total.Uint64(), nil
}

// tokenAddress returns the token of sale id, reading the sale if it was never seen.
func (g *Gateway) tokenAddress(ctx context.Context, chainID uint64, id sale.TokenID) (common.Address, error) {
	g.mu.Lock()
	addr, ok := g.tokens[tokenKey{chainID, id}]
	g.mu.Unlock()
	if ok {
		return addr, nil
	}
	snap, err := g.ReadSaleSnapshot(ctx, id)
	if err != nil {
		return common.Address{}, err
	}
	return snap.Token, nil
}
