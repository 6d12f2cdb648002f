package api

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/pkg/market"
	marketmocks "github.com/adiboy-23/fun-pump/pkg/market/mocks"
	"github.com/adiboy-23/fun-pump/pkg/pricing"
	"github.com/adiboy-23/fun-pump/pkg/reconciler"
	reconcilermocks "github.com/adiboy-23/fun-pump/pkg/reconciler/mocks"
	"github.com/adiboy-23/fun-pump/pkg/sale"
	"github.com/adiboy-23/fun-pump/pkg/trade/service/mocks"
)

var account = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func TestResettingNetwork_RefetchesConstants(t *testing.T) {
	ctx := context.Background()
	reader := marketmocks.NewReader(t)
	reader.EXPECT().NodeChainID(mock.Anything).Return(uint64(31337), nil)
	// once before the connect and once after each successful wallet change
	reader.EXPECT().ReadSaleConstants(mock.Anything).Return(sale.Constants{ChainID: 31337}, nil).Times(3)

	session := market.NewSession(reader, pricing.NewEngine(reader), market.Config{}, zap.NewNop())
	network := mocks.NewNetwork(t)
	network.EXPECT().Connect(mock.Anything).Return(account, nil).Once()
	network.EXPECT().SwitchToExpectedNetwork(mock.Anything, uint64(31337)).Return(nil).Once()
	network.EXPECT().SwitchToExpectedNetwork(mock.Anything, uint64(1)).Return(sale.ErrUnsupportedChain).Once()

	n := &resettingNetwork{Network: network, reset: session.Reset}

	_, err := session.Constants(ctx)
	require.NoError(t, err)

	got, err := n.Connect(ctx)
	require.NoError(t, err)
	assert.Equal(t, account, got)
	_, err = session.Constants(ctx)
	require.NoError(t, err)

	require.NoError(t, n.SwitchToExpectedNetwork(ctx, 31337))
	_, err = session.Constants(ctx)
	require.NoError(t, err)

	// a failed switch keeps the cache
	require.ErrorIs(t, n.SwitchToExpectedNetwork(ctx, 1), sale.ErrUnsupportedChain)
	_, err = session.Constants(ctx)
	require.NoError(t, err)
}

func TestReconcilerCheck(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	reader := reconcilermocks.NewReader(t)
	reader.EXPECT().ReadSaleConstants(mock.Anything).Return(sale.Constants{}, nil).Twice()
	reader.EXPECT().ReadTotalSales(mock.Anything).Return(uint64(0), boom).Once()
	reader.EXPECT().ReadTotalSales(mock.Anything).Return(uint64(0), nil).Once()

	rec := reconciler.New(reader, func(sale.TokenID) {}, 6, zap.NewNop())
	check := reconcilerCheck(rec)

	// ready before the first pass
	require.NoError(t, check.fn(ctx))

	require.Error(t, rec.ReconcileAll(ctx))
	err := check.fn(ctx)
	require.ErrorIs(t, err, boom)

	require.NoError(t, rec.ReconcileAll(ctx))
	assert.NoError(t, check.fn(ctx))
}
