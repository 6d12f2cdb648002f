package market

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/pkg/market/mocks"
	"github.com/adiboy-23/fun-pump/pkg/pricing"
	"github.com/adiboy-23/fun-pump/pkg/sale"
)

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

var testConstants = sale.Constants{
	ChainID:    31337,
	Target:     ether(3),
	TokenLimit: ether(500_000),
	Fee:        big.NewInt(1e16),
}

func snapshot(id sale.TokenID, raised *big.Int) sale.Snapshot {
	return sale.Snapshot{
		ID:      id,
		Token:   common.BigToAddress(big.NewInt(int64(id) + 100)),
		Name:    "TOKEN" + id.String(),
		Creator: common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		Sold:    ether(int64(id) * 1000),
		Raised:  raised,
		IsOpen:  true,
	}
}

func newSession(t *testing.T, reader *mocks.Reader, cfg Config) *Session {
	t.Helper()
	return NewSession(reader, pricing.NewEngine(reader), cfg, zap.NewNop())
}

func TestSession_ConstantsCachedPerChain(t *testing.T) {
	ctx := context.Background()
	reader := mocks.NewReader(t)
	reader.EXPECT().NodeChainID(ctx).Return(31337, nil).Times(3)
	reader.EXPECT().ReadSaleConstants(ctx).Return(testConstants, nil).Once()

	s := newSession(t, reader, Config{})
	for i := 0; i < 2; i++ {
		c, err := s.Constants(ctx)
		require.NoError(t, err)
		assert.Equal(t, testConstants, c)
	}

	s.Reset()
	reader.EXPECT().ReadSaleConstants(ctx).Return(testConstants, nil).Once()
	_, err := s.Constants(ctx)
	require.NoError(t, err)
}

func TestSession_SnapshotCacheAndInvalidate(t *testing.T) {
	ctx := context.Background()
	reader := mocks.NewReader(t)
	reader.EXPECT().NodeChainID(ctx).Return(31337, nil)
	reader.EXPECT().ReadSaleSnapshot(ctx, sale.TokenID(2)).Return(snapshot(2, ether(1)), nil).Twice()

	s := newSession(t, reader, Config{SnapshotTTL: time.Hour})

	_, err := s.Snapshot(ctx, 2)
	require.NoError(t, err)
	_, err = s.Snapshot(ctx, 2)
	require.NoError(t, err)

	s.Invalidate(2)
	_, err = s.Snapshot(ctx, 2)
	require.NoError(t, err)
}

func TestSession_SnapshotExpires(t *testing.T) {
	ctx := context.Background()
	reader := mocks.NewReader(t)
	reader.EXPECT().NodeChainID(ctx).Return(31337, nil)
	reader.EXPECT().ReadSaleSnapshot(ctx, sale.TokenID(0)).Return(snapshot(0, ether(1)), nil).Twice()

	s := newSession(t, reader, Config{SnapshotTTL: time.Second})
	now := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return now }

	_, err := s.Snapshot(ctx, 0)
	require.NoError(t, err)
	now = now.Add(2 * time.Second)
	_, err = s.Snapshot(ctx, 0)
	require.NoError(t, err)
}

func TestSession_Sale(t *testing.T) {
	ctx := context.Background()
	reader := mocks.NewReader(t)
	snap := snapshot(1, new(big.Int).Div(ether(3), big.NewInt(4)))

	reader.EXPECT().NodeChainID(ctx).Return(31337, nil)
	reader.EXPECT().ReadSaleConstants(ctx).Return(testConstants, nil).Once()
	reader.EXPECT().ReadSaleSnapshot(ctx, sale.TokenID(1)).Return(snap, nil).Once()
	reader.EXPECT().ReadUnitCost(ctx, snap.Sold).Return(big.NewInt(2e10), nil).Once()

	v, err := newSession(t, reader, Config{}).Sale(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, snap, v.Snapshot)
	assert.Equal(t, big.NewInt(2e10), v.UnitCost)
	require.NotNil(t, v.Progress)
	assert.InDelta(t, 0.25, *v.Progress, 1e-12)
	assert.Equal(t, "25.00", v.ProgressPercent)
	assert.False(t, v.Closed)
}

func TestSession_SaleTargetReached(t *testing.T) {
	ctx := context.Background()
	reader := mocks.NewReader(t)
	snap := snapshot(0, ether(4))

	reader.EXPECT().NodeChainID(ctx).Return(31337, nil)
	reader.EXPECT().ReadSaleConstants(ctx).Return(testConstants, nil).Once()
	reader.EXPECT().ReadSaleSnapshot(ctx, sale.TokenID(0)).Return(snap, nil).Once()
	reader.EXPECT().ReadUnitCost(ctx, snap.Sold).Return(big.NewInt(1e10), nil).Once()

	v, err := newSession(t, reader, Config{}).Sale(ctx, 0)
	require.NoError(t, err)
	assert.True(t, v.Closed)
	assert.Equal(t, 1.0, *v.Progress)
	assert.Equal(t, "100.00", v.ProgressPercent)
}

func TestSession_SaleZeroTarget(t *testing.T) {
	ctx := context.Background()
	reader := mocks.NewReader(t)
	zero := testConstants
	zero.Target = big.NewInt(0)
	snap := snapshot(0, big.NewInt(0))

	reader.EXPECT().NodeChainID(ctx).Return(31337, nil)
	reader.EXPECT().ReadSaleConstants(ctx).Return(zero, nil).Once()
	reader.EXPECT().ReadSaleSnapshot(ctx, sale.TokenID(0)).Return(snap, nil).Once()
	reader.EXPECT().ReadUnitCost(ctx, snap.Sold).Return(big.NewInt(1e10), nil).Once()

	v, err := newSession(t, reader, Config{}).Sale(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, v.Progress)
	assert.Empty(t, v.ProgressPercent)
}

func TestSession_ListingNewestFirst(t *testing.T) {
	ctx := context.Background()
	reader := mocks.NewReader(t)
	reader.EXPECT().NodeChainID(mock.Anything).Return(31337, nil)
	reader.EXPECT().ReadSaleConstants(ctx).Return(testConstants, nil).Once()
	reader.EXPECT().ReadTotalSales(ctx).Return(9, nil).Once()
	reader.EXPECT().ReadSaleSnapshot(mock.Anything, mock.AnythingOfType("sale.TokenID")).
		RunAndReturn(func(_ context.Context, id sale.TokenID) (sale.Snapshot, error) {
			return snapshot(id, ether(1)), nil
		}).Times(DefaultListingLimit)
	reader.EXPECT().ReadUnitCost(mock.Anything, mock.Anything).Return(big.NewInt(1e10), nil).Times(DefaultListingLimit)

	views, err := newSession(t, reader, Config{}).Listing(ctx)
	require.NoError(t, err)
	require.Len(t, views, DefaultListingLimit)
	for i, v := range views {
		assert.Equal(t, sale.TokenID(DefaultListingLimit-1-i), v.Snapshot.ID)
	}
}

func TestSession_ListingFewerThanLimit(t *testing.T) {
	ctx := context.Background()
	reader := mocks.NewReader(t)
	reader.EXPECT().NodeChainID(mock.Anything).Return(31337, nil)
	reader.EXPECT().ReadSaleConstants(ctx).Return(testConstants, nil).Once()
	reader.EXPECT().ReadTotalSales(ctx).Return(0, nil).Once()

	views, err := newSession(t, reader, Config{}).Listing(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestSession_ListingReadError(t *testing.T) {
	ctx := context.Background()
	reader := mocks.NewReader(t)
	boom := errors.New("boom")

	reader.EXPECT().NodeChainID(mock.Anything).Return(31337, nil)
	reader.EXPECT().ReadSaleConstants(ctx).Return(testConstants, nil).Once()
	reader.EXPECT().ReadTotalSales(ctx).Return(2, nil).Once()
	reader.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(0)).Return(snapshot(0, ether(1)), nil).Maybe()
	reader.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(1)).Return(sale.Snapshot{}, boom).Once()
	reader.EXPECT().ReadUnitCost(mock.Anything, mock.Anything).Return(big.NewInt(1e10), nil).Maybe()

	_, err := newSession(t, reader, Config{}).Listing(ctx)
	require.ErrorIs(t, err, boom)
}

func TestSession_QuoteRejectsBadAmountWithoutReads(t *testing.T) {
	reader := mocks.NewReader(t)
	_, err := newSession(t, reader, Config{}).Quote(context.Background(), 0, 0)
	require.ErrorIs(t, err, sale.ErrInvalidAmount)
}

func TestSession_QuoteHonorsOperatorCeiling(t *testing.T) {
	// No expectations: the ceiling is checked before any read.
	reader := mocks.NewReader(t)
	_, err := newSession(t, reader, Config{MaxAmountUnits: 100}).Quote(context.Background(), 0, 101)
	require.ErrorIs(t, err, sale.ErrInvalidAmount)
	assert.Contains(t, err.Error(), "operator limit is 100")
}

func TestSession_Quote(t *testing.T) {
	ctx := context.Background()
	reader := mocks.NewReader(t)
	snap := snapshot(3, ether(1))

	reader.EXPECT().NodeChainID(ctx).Return(31337, nil)
	reader.EXPECT().ReadSaleSnapshot(ctx, sale.TokenID(3)).Return(snap, nil).Once()
	reader.EXPECT().ReadUnitCost(ctx, snap.Sold).Return(big.NewInt(1e14), nil).Once()

	q, err := newSession(t, reader, Config{}).Quote(ctx, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, "500000000000000", q.TotalCost.String())
	assert.Equal(t, 0, q.SoldAt.Cmp(snap.Sold))
}
