package wallet

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// RPCProvider forwards wallet requests to a JSON-RPC signer endpoint.
type RPCProvider struct {
	client *rpc.Client
}

var _ Provider = (*RPCProvider)(nil)

// DialRPC connects to the wallet endpoint at url.
func DialRPC(ctx context.Context, url string) (*RPCProvider, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial wallet endpoint: %w", err)
	}
	return NewRPCProvider(client), nil
}

// NewRPCProvider wraps an existing client.
func NewRPCProvider(client *rpc.Client) *RPCProvider {
	return &RPCProvider{client: client}
}

// RequestPermissions asks for the eth_accounts permission.
func (p *RPCProvider) RequestPermissions(ctx context.Context) error {
	var granted []json.RawMessage
	return p.client.CallContext(ctx, &granted, "wallet_requestPermissions", map[string]struct{}{"eth_accounts": {}})
}

func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.client.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (p *RPCProvider) Accounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.client.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (p *RPCProvider) ChainID(ctx context.Context) (uint64, error) {
	var id hexutil.Uint64
	if err := p.client.CallContext(ctx, &id, "eth_chainId"); err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (p *RPCProvider) SwitchChain(ctx context.Context, chainID uint64) error {
	return p.client.CallContext(ctx, nil, "wallet_switchEthereumChain", SwitchChainParams{ChainID: hexutil.EncodeUint64(chainID)})
}

func (p *RPCProvider) AddChain(ctx context.Context, params AddChainParams) error {
	return p.client.CallContext(ctx, nil, "wallet_addEthereumChain", params)
}

func (p *RPCProvider) SendTransaction(ctx context.Context, tx TxRequest) (common.Hash, error) {
	var hash common.Hash
	if err := p.client.CallContext(ctx, &hash, "eth_sendTransaction", tx); err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}

func (p *RPCProvider) Close() {
	p.client.Close()
}
