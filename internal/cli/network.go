package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	tradeservice "github.com/adiboy-23/fun-pump/pkg/trade/service"
)

func newNetworkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Show the wallet's network and whether it has a sale contract",
		Args:  cobra.NoArgs,
		RunE:  a.runNetwork,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "switch [chain-id]",
		Short: "Move the wallet to a registered network",
		Long: `Ask the wallet to switch to chain-id, or to the expected network when
omitted. Unknown chains are registered with the wallet first.`,
		Example: `  funpump network switch
  funpump network switch 11155111`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runSwitch,
	})
	return cmd
}

func newConnectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Request account access from the wallet",
		Args:  cobra.NoArgs,
		RunE:  a.runConnect,
	}
}

func (a *app) runNetwork(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	chain, err := a.chain(ctx)
	if err != nil {
		return err
	}
	defer chain.Close()

	current, err := chain.CurrentNetwork(ctx)
	if err != nil {
		return err
	}
	registry := chain.Registry()
	_, supported := registry.Lookup(current)
	expected := registry.ExpectedNetwork()

	if a.jsonOut {
		return writeJSON(out(cmd), tradeservice.NetworkResponse{
			ChainID:         current,
			Supported:       supported,
			ExpectedChainID: expected.ChainID,
			ExpectedName:    expected.Name,
		})
	}
	w := out(cmd)
	if supported {
		fmt.Fprintf(w, "Wallet is on chain %d (supported)\n", current)
		return nil
	}
	fmt.Fprintf(w, "Wallet is on chain %d, which has no sale contract\n", current)
	fmt.Fprintf(w, "Run: funpump network switch %d  (%s)\n", expected.ChainID, expected.Name)
	return nil
}

func (a *app) runSwitch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	chain, err := a.chain(ctx)
	if err != nil {
		return err
	}
	defer chain.Close()

	target := chain.Registry().Expected
	if len(args) == 1 {
		if target, err = strconv.ParseUint(args[0], 10, 64); err != nil {
			return fmt.Errorf("invalid chain id %q", args[0])
		}
	}
	if err := chain.SwitchToExpectedNetwork(ctx, target); err != nil {
		return err
	}

	if a.jsonOut {
		return writeJSON(out(cmd), tradeservice.SwitchResponse{ChainID: target})
	}
	_, err = fmt.Fprintf(out(cmd), "Switched wallet to chain %d\n", target)
	return err
}

func (a *app) runConnect(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	chain, err := a.chain(ctx)
	if err != nil {
		return err
	}
	defer chain.Close()

	account, err := chain.Connect(ctx)
	if err != nil {
		return err
	}
	if a.jsonOut {
		return writeJSON(out(cmd), tradeservice.ConnectResponse{Account: account.Hex()})
	}
	_, err = fmt.Fprintf(out(cmd), "Connected %s\n", account.Hex())
	return err
}
