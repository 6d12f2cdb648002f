package api

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/adiboy-23/fun-pump/pkg/reconciler"
	tradeservice "github.com/adiboy-23/fun-pump/pkg/trade/service"
)

// resettingNetwork drops cached sale reads after the wallet reconnects or
// changes chain.
type resettingNetwork struct {
	tradeservice.Network
	reset func()
}

func (n *resettingNetwork) Connect(ctx context.Context) (common.Address, error) {
	account, err := n.Network.Connect(ctx)
	if err == nil {
		n.reset()
	}
	return account, err
}

func (n *resettingNetwork) SwitchToExpectedNetwork(ctx context.Context, chainID uint64) error {
	if err := n.Network.SwitchToExpectedNetwork(ctx, chainID); err != nil {
		return err
	}
	n.reset()
	return nil
}

func reconcilerCheck(rec *reconciler.Reconciler) readinessCheck {
	return readinessCheck{name: "reconciler", fn: func(context.Context) error {
		st := rec.Status()
		if st.Err != nil {
			return fmt.Errorf("last pass at %s: %w", st.LastRun.Format("15:04:05"), st.Err)
		}
		return nil
	}}
}
