package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// KeyedProvider signs with a locally held private key and broadcasts through a node.
// Permissions are implicit and the only reachable chain is the one the key is configured for.
type KeyedProvider struct {
	backend    bind.ContractTransactor
	privateKey *ecdsa.PrivateKey
	address    common.Address
	chainID    uint64
	gasLimit   uint64
	logger     *zap.Logger

	// held from nonce assignment to broadcast
	sendMu sync.Mutex
	// next nonce after the last broadcast, 0 until the first one
	nextNonce uint64
}

var _ Provider = (*KeyedProvider)(nil)

// NewKeyedProvider creates a provider for the hex encoded key. gasLimit 0 means estimate.
func NewKeyedProvider(backend bind.ContractTransactor, hexKey string, chainID, gasLimit uint64, logger *zap.Logger) (*KeyedProvider, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	logger.Info("Using keyed wallet",
		zap.String("address", address.Hex()),
		zap.Uint64("chain_id", chainID))

	return &KeyedProvider{
		backend:    backend,
		privateKey: privateKey,
		address:    address,
		chainID:    chainID,
		gasLimit:   gasLimit,
		logger:     logger,
	}, nil
}

// Address returns the signing account.
func (p *KeyedProvider) Address() common.Address {
	return p.address
}

func (p *KeyedProvider) RequestPermissions(context.Context) error {
	return nil
}

func (p *KeyedProvider) RequestAccounts(context.Context) ([]common.Address, error) {
	return []common.Address{p.address}, nil
}

func (p *KeyedProvider) Accounts(context.Context) ([]common.Address, error) {
	return []common.Address{p.address}, nil
}

func (p *KeyedProvider) ChainID(context.Context) (uint64, error) {
	return p.chainID, nil
}

func (p *KeyedProvider) SwitchChain(_ context.Context, chainID uint64) error {
	if chainID != p.chainID {
		return &Error{Code: CodeUnrecognizedChain, Message: fmt.Sprintf("key is bound to chain %d", p.chainID)}
	}
	return nil
}

func (p *KeyedProvider) AddChain(_ context.Context, params AddChainParams) error {
	return &Error{Code: CodeUnsupportedMethod, Message: "keyed wallet cannot add chain " + params.ChainID}
}

// transactor returns a signer with nonce and gas price filled in. The nonce is
// never below one already broadcast by this provider. Callers hold sendMu.
func (p *KeyedProvider) transactor(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(p.privateKey, new(big.Int).SetUint64(p.chainID))
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	nonce, err := p.backend.PendingNonceAt(ctx, p.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}
	auth.Nonce = new(big.Int).SetUint64(max(nonce, p.nextNonce))

	gasPrice, err := p.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas price: %w", err)
	}
	auth.GasPrice = gasPrice
	auth.GasLimit = p.gasLimit
	auth.Context = ctx

	return auth, nil
}

// SendTransaction signs req and broadcasts it.
func (p *KeyedProvider) SendTransaction(ctx context.Context, req TxRequest) (common.Hash, error) {
	if req.From != (common.Address{}) && req.From != p.address {
		return common.Hash{}, &Error{Code: CodeUnauthorized, Message: "unknown account " + req.From.Hex()}
	}

	p.sendMu.Lock()
	defer p.sendMu.Unlock()

	auth, err := p.transactor(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	value := new(big.Int)
	if req.Value != nil {
		value = req.Value.ToInt()
	}

	gas := auth.GasLimit
	if req.Gas != nil {
		gas = uint64(*req.Gas)
	}
	if gas == 0 {
		gas, err = p.backend.EstimateGas(ctx, ethereum.CallMsg{
			From:  p.address,
			To:    req.To,
			Value: value,
			Data:  req.Data,
		})
		if err != nil {
			return common.Hash{}, fmt.Errorf("failed to estimate gas: %w", err)
		}
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    auth.Nonce.Uint64(),
		GasPrice: auth.GasPrice,
		Gas:      gas,
		To:       req.To,
		Value:    value,
		Data:     req.Data,
	})

	signed, err := auth.Signer(auth.From, tx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := p.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, err
	}
	p.nextNonce = signed.Nonce() + 1

	p.logger.Debug("Transaction broadcast",
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.Uint64("nonce", signed.Nonce()),
		zap.Uint64("gas", gas))

	return signed.Hash(), nil
}

func (p *KeyedProvider) Close() {}
