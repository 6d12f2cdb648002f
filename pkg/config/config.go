package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. FUNPUMP_ETHEREUM_PRIVATE_KEY.
const EnvPrefix = "FUNPUMP"

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Ethereum   EthereumConfig   `mapstructure:"ethereum"`
	Trade      TradeConfig      `mapstructure:"trade"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Shutdown   ShutdownConfig   `mapstructure:"shutdown"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection settings.
// When disabled, purchase outcomes are kept in memory only.
type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host" validate:"required_if=Enabled true"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database" validate:"required_if=Enabled true"`
	SSLMode  string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
}

// EthereumConfig contains node and wallet settings.
// At most one of WalletRPCURL and PrivateKey is used; the wallet endpoint wins.
type EthereumConfig struct {
	RPCURL              string        `mapstructure:"rpc_url" validate:"required,url"`
	WalletRPCURL        string        `mapstructure:"wallet_rpc_url" validate:"omitempty,url"`
	PrivateKey          string        `mapstructure:"private_key"`
	ChainsFile          string        `mapstructure:"chains_file"`
	GasLimit            uint64        `mapstructure:"gas_limit"`
	ConfirmationTimeout time.Duration `mapstructure:"confirmation_timeout" validate:"gt=0"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval" validate:"gt=0"`
	ReadRetryMax        uint          `mapstructure:"read_retry_max" validate:"min=1"`
	ReadRateLimit       float64       `mapstructure:"read_rate_limit" validate:"gte=0"`
	ReadRateBurst       int           `mapstructure:"read_rate_burst" validate:"min=1"`
}

// TradeConfig contains purchase controller settings
type TradeConfig struct {
	MaxAmountUnits uint64        `mapstructure:"max_amount_units" validate:"min=1,max=10000"`
	ListingLimit   int           `mapstructure:"listing_limit" validate:"min=1"`
	HistoryLimit   int           `mapstructure:"history_limit" validate:"min=1"`
	SnapshotTTL    time.Duration `mapstructure:"snapshot_ttl" validate:"gte=0"`
	// ReconcileInterval of zero disables the background sale reconciler.
	ReconcileInterval time.Duration `mapstructure:"reconcile_interval" validate:"gte=0"`
}

// AuthConfig contains bearer token settings for write routes
type AuthConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	HMACSecret string        `mapstructure:"hmac_secret" validate:"required_if=Enabled true"`
	Issuer     string        `mapstructure:"issuer"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=json console"`
	OutputPath string `mapstructure:"output_path"`
}

// ShutdownConfig contains graceful shutdown settings
type ShutdownConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load loads configuration from file and environment variables.
// An empty configPath uses defaults and environment only.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.request_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	v.SetDefault("database.enabled", true)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.database", "funpump")
	v.SetDefault("database.ssl_mode", "disable")

	// Ethereum defaults
	v.SetDefault("ethereum.rpc_url", "http://127.0.0.1:8545")
	v.SetDefault("ethereum.wallet_rpc_url", "")
	v.SetDefault("ethereum.private_key", "")
	v.SetDefault("ethereum.chains_file", "")
	v.SetDefault("ethereum.gas_limit", 0)
	v.SetDefault("ethereum.confirmation_timeout", "2m")
	v.SetDefault("ethereum.receipt_poll_interval", "1s")
	v.SetDefault("ethereum.read_retry_max", 3)
	v.SetDefault("ethereum.read_rate_limit", 20)
	v.SetDefault("ethereum.read_rate_burst", 10)

	// Trade defaults
	v.SetDefault("trade.max_amount_units", 10000)
	v.SetDefault("trade.listing_limit", 6)
	v.SetDefault("trade.history_limit", 50)
	v.SetDefault("trade.snapshot_ttl", "5s")
	v.SetDefault("trade.reconcile_interval", "30s")

	// Auth defaults
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.hmac_secret", "")
	v.SetDefault("auth.issuer", "funpump")
	v.SetDefault("auth.token_ttl", "1h")

	// Monitoring defaults
	v.SetDefault("monitoring.enabled", true)
	v.SetDefault("monitoring.metrics_path", "/metrics")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")

	// Shutdown defaults
	v.SetDefault("shutdown.timeout", "30s")
}

// MinHMACSecretLength is the shortest accepted auth.hmac_secret.
const MinHMACSecretLength = 32

var configValidator = validator.New(validator.WithRequiredStructEnabled())

func validate(config *Config) error {
	if err := configValidator.Struct(config); err != nil {
		return err
	}
	if config.Auth.Enabled && len(config.Auth.HMACSecret) < MinHMACSecretLength {
		return fmt.Errorf("auth.hmac_secret must be at least %d bytes", MinHMACSecretLength)
	}
	return nil
}
