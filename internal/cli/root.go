// Package cli implements the funpump command-line client.
package cli

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/pkg/config"
	"github.com/adiboy-23/fun-pump/pkg/ethereum"
	"github.com/adiboy-23/fun-pump/pkg/sale"
)

// Chain is the chain surface the commands use.
type Chain interface {
	NodeChainID(ctx context.Context) (uint64, error)
	ReadSaleConstants(ctx context.Context) (sale.Constants, error)
	ReadSaleSnapshot(ctx context.Context, id sale.TokenID) (sale.Snapshot, error)
	ReadUnitCost(ctx context.Context, sold *big.Int) (*big.Int, error)
	ReadTotalSales(ctx context.Context) (uint64, error)
	SubmitPurchase(ctx context.Context, id sale.TokenID, amountUnits uint64, totalCost *big.Int) (sale.TxHandle, error)
	AwaitConfirmation(ctx context.Context, h sale.TxHandle) error
	Connect(ctx context.Context) (common.Address, error)
	CurrentNetwork(ctx context.Context) (uint64, error)
	SwitchToExpectedNetwork(ctx context.Context, chainID uint64) error
	Registry() *config.ChainRegistry
	Close()
}

// Dialer opens a Chain for the loaded configuration.
type Dialer func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Chain, error)

// app carries the state shared by all commands of one invocation.
type app struct {
	configPath string
	rpcURL     string
	jsonOut    bool
	verbose    bool

	dial   Dialer
	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd builds the command tree. dial is used to reach the chain.
func NewRootCmd(dial Dialer) *cobra.Command {
	a := &app{dial: dial}

	root := &cobra.Command{
		Use:   "funpump",
		Short: "Browse and buy into bonding-curve token sales",
		Long: `funpump talks to a fun.pump factory contract.

It lists the newest sales, quotes purchases on the bonding curve and submits
buys signed by the configured wallet.

Example:
  funpump sales
  funpump quote 0 250
  funpump buy 0 250 --config config.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to configuration file")
	root.PersistentFlags().StringVar(&a.rpcURL, "rpc-url", "", "node RPC URL, overrides ethereum.rpc_url")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print JSON instead of text")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newSalesCmd(a),
		newQuoteCmd(a),
		newBuyCmd(a),
		newNetworkCmd(a),
		newConnectCmd(a),
		newTokenCmd(a),
	)
	return root
}

// Execute runs the CLI against the configured node and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd(DialGateway)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCode(err)
	}
	return 0
}

// DialGateway opens the chain gateway described by cfg.
func DialGateway(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Chain, error) {
	registry := config.DefaultChainRegistry()
	if cfg.Ethereum.ChainsFile != "" {
		var err error
		if registry, err = config.LoadChainRegistry(cfg.Ethereum.ChainsFile); err != nil {
			return nil, err
		}
	}
	gw, err := ethereum.Dial(ctx, &cfg.Ethereum, registry, logger)
	if err != nil {
		return nil, err
	}
	return gw, nil
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.rpcURL != "" {
		cfg.Ethereum.RPCURL = a.rpcURL
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	// logs go to stderr so stdout stays parseable
	cfg.Logging.Format = "console"
	cfg.Logging.OutputPath = "stderr"

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) chain(ctx context.Context) (Chain, error) {
	return a.dial(ctx, a.cfg, a.logger)
}

// exitCode maps error classes to distinct exit codes for scripting.
func exitCode(err error) int {
	switch sale.ClassOf(err) {
	case sale.ClassInput:
		return 2
	case sale.ClassConnectivity:
		return 3
	case sale.ClassAuthorization:
		return 4
	case sale.ClassChain:
		return 5
	default:
		return 1
	}
}

func parseTokenID(s string) (sale.TokenID, error) {
	id, err := sale.ParseTokenID(s)
	if err != nil {
		return 0, fmt.Errorf("invalid sale id %q: must be a non-negative integer", s)
	}
	return id, nil
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
