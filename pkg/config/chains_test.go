package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChainRegistry_FillsDefaults(t *testing.T) {
	reg, err := ParseChainRegistry([]byte(`
networks:
  - chain_id: 31337
    name: Hardhat Local
    rpc_urls: ["http://127.0.0.1:8545"]
    factory: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
  - chain_id: 11155111
    name: Sepolia
    rpc_urls: ["https://rpc.sepolia.org"]
    native_currency:
      name: Sepolia Ether
      symbol: ETH
    factory: "0x0000000000000000000000000000000000000001"
`))
	require.NoError(t, err)

	assert.Equal(t, uint64(HardhatChainID), reg.Expected)

	local := reg.ExpectedNetwork()
	assert.Equal(t, "GO", local.NativeCurrency.Symbol)
	assert.Equal(t, uint8(18), local.NativeCurrency.Decimals)
	assert.Equal(t, "0x7a69", local.ChainIDHex())
	assert.Equal(t, HardhatFactoryAddress, local.FactoryAddress().Hex())

	sepolia, ok := reg.Lookup(11155111)
	require.True(t, ok)
	assert.Equal(t, "ETH", sepolia.NativeCurrency.Symbol)
	assert.Equal(t, uint8(18), sepolia.NativeCurrency.Decimals)

	_, ok = reg.Lookup(1)
	assert.False(t, ok)
}

func TestParseChainRegistry_Invalid(t *testing.T) {
	tests := map[string]string{
		"no networks": "expected: 31337\n",
		"bad factory": `
networks:
  - chain_id: 31337
    name: Hardhat Local
    rpc_urls: ["http://127.0.0.1:8545"]
    factory: "nope"
`,
		"expected chain missing": `
expected: 1
networks:
  - chain_id: 31337
    name: Hardhat Local
    rpc_urls: ["http://127.0.0.1:8545"]
    factory: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
`,
		"duplicate chain": `
networks:
  - chain_id: 31337
    name: A
    rpc_urls: ["http://127.0.0.1:8545"]
    factory: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
  - chain_id: 31337
    name: B
    rpc_urls: ["http://127.0.0.1:8546"]
    factory: "0x5FbDB2315678afecb367f032d93F642f64180aa3"
`,
		"not yaml": "networks: [",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseChainRegistry([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestLoadChainRegistry(t *testing.T) {
	reg, err := LoadChainRegistry("")
	require.NoError(t, err)
	require.NoError(t, reg.Validate())
	assert.Equal(t, "Hardhat Local", reg.ExpectedNetwork().Name)

	_, err = LoadChainRegistry(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
