package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/adiboy-23/fun-pump/pkg/market"
	"github.com/adiboy-23/fun-pump/pkg/pricing"
	"github.com/adiboy-23/fun-pump/pkg/sale"
	tradeservice "github.com/adiboy-23/fun-pump/pkg/trade/service"
)

func newSalesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales [id]",
		Short: "List the newest sales, or show one",
		Long: `List up to trade.listing_limit of the first sales created, newest first.

With an id, show that sale only.`,
		Example: `  funpump sales
  funpump sales 3 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runSales,
	}
	return cmd
}

func newQuoteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "quote <id> <amount>",
		Short:   "Price a purchase at the sale's current sold amount",
		Example: `  funpump quote 0 250`,
		Args:    cobra.ExactArgs(2),
		RunE:    a.runQuote,
	}
}

func (a *app) session(chain Chain) *market.Session {
	return market.NewSession(chain, pricing.NewEngine(chain), market.Config{
		ListingLimit:   a.cfg.Trade.ListingLimit,
		MaxAmountUnits: a.cfg.Trade.MaxAmountUnits,
	}, a.logger)
}

func (a *app) runSales(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	chain, err := a.chain(ctx)
	if err != nil {
		return err
	}
	defer chain.Close()
	s := a.session(chain)

	var views []market.SaleView
	if len(args) == 1 {
		id, err := parseTokenID(args[0])
		if err != nil {
			return err
		}
		v, err := s.Sale(ctx, id)
		if err != nil {
			return err
		}
		views = []market.SaleView{v}
	} else if views, err = s.Listing(ctx); err != nil {
		return err
	}

	if a.jsonOut {
		resp := make([]tradeservice.SaleResponse, len(views))
		for i, v := range views {
			resp[i] = tradeservice.NewSaleResponse(v)
		}
		return writeJSON(out(cmd), resp)
	}
	return writeSalesTable(out(cmd), views)
}

func writeSalesTable(w io.Writer, views []market.SaleView) error {
	if len(views) == 0 {
		_, err := fmt.Fprintln(w, "No sales yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSOLD\tRAISED\tPROGRESS\tNEXT UNIT\tSTATUS")
	for _, v := range views {
		progress := v.ProgressPercent
		if progress == "" {
			progress = "-"
		}
		unit := "-"
		if v.UnitCost != nil {
			unit = sale.FormatUnits(v.UnitCost)
		}
		status := "open"
		if v.Closed {
			status = "closed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.Snapshot.ID, v.Snapshot.Name,
			sale.FormatUnits(v.Snapshot.Sold), sale.FormatUnits(v.Snapshot.Raised),
			progress, unit, status)
	}
	return tw.Flush()
}

func (a *app) runQuote(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id, err := parseTokenID(args[0])
	if err != nil {
		return err
	}
	req, err := sale.ParsePurchaseRequest(args[1])
	if err != nil {
		return err
	}

	chain, err := a.chain(ctx)
	if err != nil {
		return err
	}
	defer chain.Close()

	q, err := a.session(chain).Quote(ctx, id, req.AmountUnits)
	if err != nil {
		return err
	}

	if a.jsonOut {
		return writeJSON(out(cmd), tradeservice.NewQuoteResponse(q))
	}
	_, err = fmt.Fprintf(out(cmd), "%d units of sale %s at %s ETH each: %s ETH\n",
		q.AmountUnits, id, sale.FormatUnits(q.UnitCost), sale.FormatUnits(q.TotalCost))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
