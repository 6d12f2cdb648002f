package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/pkg/sale"
	"github.com/adiboy-23/fun-pump/pkg/trade"
	tradeservice "github.com/adiboy-23/fun-pump/pkg/trade/service"
)

func newBuyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <id> <amount>",
		Short: "Buy whole token units from a sale",
		Long: `Buy amount whole token units (1 to 10000) from sale id.

The price is read from the chain immediately before signing. The command
waits until the transaction is confirmed or ethereum.confirmation_timeout
passes. Interrupting the wait does not cancel a transaction already sent.`,
		Example: `  funpump buy 0 250
  FUNPUMP_ETHEREUM_PRIVATE_KEY=0x... funpump buy 2 10 --json`,
		Args: cobra.ExactArgs(2),
		RunE: a.runBuy,
	}
}

func (a *app) runBuy(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id, err := parseTokenID(args[0])
	if err != nil {
		return err
	}

	chain, err := a.chain(ctx)
	if err != nil {
		return err
	}
	defer chain.Close()

	controller := trade.NewController(chain, nil, trade.Config{
		ConfirmationTimeout: a.cfg.Ethereum.ConfirmationTimeout,
		MaxAmountUnits:      a.cfg.Trade.MaxAmountUnits,
	}, a.logger)
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), a.cfg.Shutdown.Timeout)
		defer cancel()
		if cerr := controller.Close(dctx); cerr != nil {
			a.logger.Warn("Exiting with purchase in flight", zap.Error(cerr))
		}
	}()

	attemptID, err := controller.Submit(ctx, id, args[1])
	if err != nil {
		return err
	}
	a.logger.Info("Purchase submitted", zap.String("attempt_id", attemptID), zap.Stringer("token_id", id))

	attempt, err := controller.Wait(ctx, attemptID)
	if err != nil {
		return fmt.Errorf("stopped waiting for attempt %s: %w", attemptID, err)
	}

	if a.jsonOut {
		if werr := writeJSON(out(cmd), tradeservice.NewAttemptResponse(attempt)); werr != nil {
			return werr
		}
		return attempt.Err()
	}
	if attempt.State == trade.StateFailed {
		return attempt.Err()
	}

	w := out(cmd)
	fmt.Fprintf(w, "Bought %d units of sale %s for %s ETH\n",
		attempt.AmountUnits, id, sale.FormatUnits(attempt.Quote.TotalCost))
	fmt.Fprintf(w, "Transaction: %s\n", attempt.TxHash.Hex())
	return nil
}
