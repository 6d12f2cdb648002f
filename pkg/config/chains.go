package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"gopkg.in/yaml.v3"
)

// HardhatChainID is the chain a fresh local deployment runs on.
const HardhatChainID = 31337

// HardhatFactoryAddress is the first contract address deployed by the default hardhat account.
const HardhatFactoryAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

// NativeCurrency describes the gas token shown by wallets when a chain is added.
type NativeCurrency struct {
	Name     string `yaml:"name" default:"GO" validate:"required"`
	Symbol   string `yaml:"symbol" default:"GO" validate:"required"`
	Decimals uint8  `yaml:"decimals" default:"18" validate:"min=1,max=36"`
}

// Network is one chain the sale factory is deployed on.
type Network struct {
	ChainID        uint64         `yaml:"chain_id" validate:"required"`
	Name           string         `yaml:"name" validate:"required"`
	RPCURLs        []string       `yaml:"rpc_urls" validate:"required,min=1,dive,url"`
	ExplorerURLs   []string       `yaml:"block_explorer_urls" validate:"dive,url"`
	NativeCurrency NativeCurrency `yaml:"native_currency"`
	Factory        string         `yaml:"factory" validate:"required,eth_addr"`
}

// FactoryAddress returns the parsed factory contract address.
func (n Network) FactoryAddress() common.Address {
	return common.HexToAddress(n.Factory)
}

// ChainIDHex returns the chain ID in the 0x-prefixed form wallets expect.
func (n Network) ChainIDHex() string {
	return hexutil.EncodeUint64(n.ChainID)
}

// ChainRegistry maps chain IDs to their factory deployment.
type ChainRegistry struct {
	// Expected is the chain users are asked to switch to.
	Expected uint64    `yaml:"expected" default:"31337"`
	Networks []Network `yaml:"networks" validate:"required,min=1,dive"`
}

// DefaultChainRegistry returns a registry with the local hardhat network only.
func DefaultChainRegistry() *ChainRegistry {
	return &ChainRegistry{
		Expected: HardhatChainID,
		Networks: []Network{{
			ChainID: HardhatChainID,
			Name:    "Hardhat Local",
			RPCURLs: []string{"http://127.0.0.1:8545"},
			NativeCurrency: NativeCurrency{
				Name:     "GO",
				Symbol:   "GO",
				Decimals: 18,
			},
			Factory: HardhatFactoryAddress,
		}},
	}
}

// LoadChainRegistry reads a chain registry file. An empty path yields the default registry.
func LoadChainRegistry(path string) (*ChainRegistry, error) {
	if path == "" {
		return DefaultChainRegistry(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chains file: %w", err)
	}
	return ParseChainRegistry(data)
}

// ParseChainRegistry decodes a YAML chain registry, filling defaults before validation.
func ParseChainRegistry(data []byte) (*ChainRegistry, error) {
	var reg ChainRegistry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse chains file: %w", err)
	}

	if err := defaults.Set(&reg); err != nil {
		return nil, fmt.Errorf("failed to apply chain defaults: %w", err)
	}
	for i := range reg.Networks {
		if err := defaults.Set(&reg.Networks[i]); err != nil {
			return nil, fmt.Errorf("failed to apply defaults for network %d: %w", reg.Networks[i].ChainID, err)
		}
	}

	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chains file: %w", err)
	}
	return &reg, nil
}

// Validate checks every network and that the expected chain is registered.
func (r *ChainRegistry) Validate() error {
	if err := configValidator.Struct(r); err != nil {
		return err
	}

	seen := make(map[uint64]struct{}, len(r.Networks))
	for _, n := range r.Networks {
		if _, dup := seen[n.ChainID]; dup {
			return fmt.Errorf("duplicate chain id %d", n.ChainID)
		}
		seen[n.ChainID] = struct{}{}
	}
	if _, ok := seen[r.Expected]; !ok {
		return fmt.Errorf("expected chain %d is not in networks", r.Expected)
	}
	return nil
}

// Lookup returns the network registered for chainID.
func (r *ChainRegistry) Lookup(chainID uint64) (Network, bool) {
	for _, n := range r.Networks {
		if n.ChainID == chainID {
			return n, true
		}
	}
	return Network{}, false
}

// ExpectedNetwork returns the network users should be on.
func (r *ChainRegistry) ExpectedNetwork() Network {
	n, _ := r.Lookup(r.Expected)
	return n
}
