package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
database:
  user: funpump
  password: secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://127.0.0.1:8545", cfg.Ethereum.RPCURL)
	assert.Equal(t, 2*time.Minute, cfg.Ethereum.ConfirmationTimeout)
	assert.Equal(t, time.Second, cfg.Ethereum.ReceiptPollInterval)
	assert.Equal(t, uint(3), cfg.Ethereum.ReadRetryMax)
	assert.Equal(t, uint64(10000), cfg.Trade.MaxAmountUnits)
	assert.Equal(t, 6, cfg.Trade.ListingLimit)
	assert.Equal(t, 5*time.Second, cfg.Trade.SnapshotTTL)
	assert.Equal(t, 30*time.Second, cfg.Trade.ReconcileInterval)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "funpump", cfg.Database.Database)
	assert.Equal(t, "/metrics", cfg.Monitoring.MetricsPath)
	assert.False(t, cfg.Auth.Enabled)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  port: 9000
ethereum:
  rpc_url: http://node:8545
  confirmation_timeout: 45s
trade:
  listing_limit: 3
`)
	t.Setenv("FUNPUMP_ETHEREUM_PRIVATE_KEY", "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	t.Setenv("FUNPUMP_SERVER_PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "http://node:8545", cfg.Ethereum.RPCURL)
	assert.Equal(t, 45*time.Second, cfg.Ethereum.ConfirmationTimeout)
	assert.Equal(t, 3, cfg.Trade.ListingLimit)
	assert.True(t, strings.HasPrefix(cfg.Ethereum.PrivateKey, "ac0974"))
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad rpc url", "ethereum:\n  rpc_url: not a url\n"},
		{"amount ceiling above contract max", "trade:\n  max_amount_units: 20000\n"},
		{"auth without secret", "auth:\n  enabled: true\n"},
		{"auth with short secret", "auth:\n  enabled: true\n  hmac_secret: short\n"},
		{"unknown log format", "logging:\n  format: xml\n"},
		{"zero poll interval", "ethereum:\n  receipt_poll_interval: 0s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "config.yaml", tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_NoFileUsesEnvironment(t *testing.T) {
	t.Setenv("FUNPUMP_ETHEREUM_RPC_URL", "http://node:8545")
	t.Setenv("FUNPUMP_DATABASE_ENABLED", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://node:8545", cfg.Ethereum.RPCURL)
	assert.False(t, cfg.Database.Enabled)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	logger, err = NewLogger(LoggingConfig{Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger(LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestExampleFilesLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "chains.example.yaml", cfg.Ethereum.ChainsFile)
	assert.Equal(t, 30*time.Second, cfg.Trade.ReconcileInterval)

	registry, err := LoadChainRegistry(filepath.Join("..", "..", cfg.Ethereum.ChainsFile))
	require.NoError(t, err)
	n, ok := registry.Lookup(registry.Expected)
	require.True(t, ok)
	assert.Equal(t, HardhatFactoryAddress, n.Factory)
}
