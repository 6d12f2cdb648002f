package trade_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/pkg/sale"
	"github.com/adiboy-23/fun-pump/pkg/trade"
	"github.com/adiboy-23/fun-pump/pkg/trade/mocks"
)

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

var constants = sale.Constants{
	ChainID:    31337,
	Target:     ether(3),
	TokenLimit: ether(500_000),
	Fee:        big.NewInt(1e16),
}

var buyer = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func openSale(id sale.TokenID, sold *big.Int) sale.Snapshot {
	return sale.Snapshot{
		ID:     id,
		Token:  common.BigToAddress(big.NewInt(int64(id) + 1)),
		Name:   "DAPP",
		Sold:   sold,
		Raised: ether(1),
		IsOpen: true,
	}
}

func handle(n int64) sale.TxHandle {
	return sale.TxHandle{Hash: common.BigToHash(big.NewInt(n)), From: buyer, ChainID: 31337}
}

// invalidations records snapshot invalidation callbacks.
type invalidations struct {
	mu  sync.Mutex
	ids []sale.TokenID
}

func (i *invalidations) add(id sale.TokenID) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ids = append(i.ids, id)
}

func (i *invalidations) get() []sale.TokenID {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]sale.TokenID(nil), i.ids...)
}

func newController(t *testing.T, gw trade.Gateway, store trade.Store, cfg trade.Config) (*trade.Controller, *invalidations) {
	t.Helper()
	c := trade.NewController(gw, store, cfg, zap.NewNop())
	inv := &invalidations{}
	c.OnSnapshotInvalidated(inv.add)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = c.Close(ctx)
	})
	return c, inv
}

func wait(t *testing.T, c *trade.Controller, id string) *trade.Attempt {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a, err := c.Wait(ctx, id)
	require.NoError(t, err)
	return a
}

func TestSubmit_InvalidAmountMakesNoChainCalls(t *testing.T) {
	// No expectations: any gateway call fails the test.
	gw := mocks.NewGateway(t)
	c, inv := newController(t, gw, nil, trade.Config{})

	for _, input := range []string{"abc", "0", "10001", "-1", "1.5", "", "1e3", "+5", "99999999999999999999999"} {
		id, err := c.Submit(context.Background(), 0, input)
		require.ErrorIs(t, err, sale.ErrInvalidAmount, "input %q", input)
		require.NotEmpty(t, id)

		a := wait(t, c, id)
		assert.Equal(t, trade.StateFailed, a.State)
		assert.Equal(t, "InvalidAmount", a.ErrorCode)
		assert.Equal(t, sale.ClassInput, a.ErrorClass)
		assert.ErrorIs(t, a.Err(), sale.ErrInvalidAmount)
	}
	assert.Empty(t, inv.get())
}

func TestSubmit_InvalidAmountDoesNotHoldLock(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewGateway(t)
	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(constants, nil).Once()
	gw.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(0)).Return(openSale(0, ether(0)), nil).Once()
	gw.EXPECT().ReadUnitCost(mock.Anything, mock.Anything).Return(ether(1), nil).Once()
	gw.EXPECT().SubmitPurchase(mock.Anything, sale.TokenID(0), uint64(1), ether(1)).Return(handle(1), nil).Once()
	gw.EXPECT().AwaitConfirmation(mock.Anything, handle(1)).Return(nil).Once()

	c, _ := newController(t, gw, nil, trade.Config{})

	_, err := c.Submit(ctx, 0, "abc")
	require.ErrorIs(t, err, sale.ErrInvalidAmount)

	id, err := c.Submit(ctx, 0, "1")
	require.NoError(t, err)
	assert.Equal(t, trade.StateSucceeded, wait(t, c, id).State)
}

func TestSubmit_ScenarioA_Succeeds(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewGateway(t)

	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(constants, nil).Once()
	gw.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(0)).Return(openSale(0, big.NewInt(0)), nil).Once()
	gw.EXPECT().ReadUnitCost(mock.Anything, big.NewInt(0)).Return(ether(1), nil).Once()
	gw.EXPECT().SubmitPurchase(mock.Anything, sale.TokenID(0), uint64(5), ether(5)).Return(handle(1), nil).Once()
	gw.EXPECT().AwaitConfirmation(mock.Anything, handle(1)).Return(nil).Once()

	c, inv := newController(t, gw, nil, trade.Config{})

	id, err := c.Submit(ctx, 0, "5")
	require.NoError(t, err)

	a := wait(t, c, id)
	assert.Equal(t, trade.StateSucceeded, a.State)
	require.NotNil(t, a.Quote)
	assert.Equal(t, "5", sale.FormatUnits(a.Quote.TotalCost))
	assert.Equal(t, uint64(5), a.AmountUnits)
	assert.Equal(t, handle(1).Hash, *a.TxHash)
	assert.Equal(t, buyer, a.Account)
	assert.Empty(t, a.ErrorCode)
	assert.NoError(t, a.Err())

	assert.Equal(t, []sale.TokenID{0}, inv.get())
}

func TestSubmit_ScenarioB_SaleClosed(t *testing.T) {
	gw := mocks.NewGateway(t)
	closed := openSale(2, ether(1000))
	closed.Raised = constants.Target

	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(constants, nil).Once()
	gw.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(2)).Return(closed, nil).Once()

	c, inv := newController(t, gw, nil, trade.Config{})

	id, err := c.Submit(context.Background(), 2, "10")
	require.NoError(t, err)

	a := wait(t, c, id)
	assert.Equal(t, trade.StateFailed, a.State)
	assert.Equal(t, "SaleClosed", a.ErrorCode)
	assert.ErrorIs(t, a.Err(), sale.ErrSaleClosed)
	assert.Nil(t, a.Quote)
	gw.AssertNotCalled(t, "SubmitPurchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, []sale.TokenID{2}, inv.get())
}

func TestSubmit_ClosedByStaleOpenFlag(t *testing.T) {
	gw := mocks.NewGateway(t)
	stale := openSale(0, constants.TokenLimit)

	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(constants, nil).Once()
	gw.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(0)).Return(stale, nil).Once()

	c, _ := newController(t, gw, nil, trade.Config{})
	id, err := c.Submit(context.Background(), 0, "1")
	require.NoError(t, err)
	assert.Equal(t, "SaleClosed", wait(t, c, id).ErrorCode)
}

func TestSubmit_ScenarioC_SignatureRejected(t *testing.T) {
	gw := mocks.NewGateway(t)

	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(constants, nil).Once()
	gw.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(1)).Return(openSale(1, ether(10)), nil).Once()
	gw.EXPECT().ReadUnitCost(mock.Anything, ether(10)).Return(big.NewInt(1e10), nil).Once()
	gw.EXPECT().SubmitPurchase(mock.Anything, sale.TokenID(1), uint64(3), big.NewInt(3e10)).
		Return(sale.TxHandle{}, sale.ErrSignatureRejected).Once()

	c, inv := newController(t, gw, nil, trade.Config{})

	id, err := c.Submit(context.Background(), 1, "3")
	require.NoError(t, err)

	a := wait(t, c, id)
	assert.Equal(t, trade.StateFailed, a.State)
	assert.Equal(t, "SignatureRejected", a.ErrorCode)
	assert.Equal(t, sale.ClassAuthorization, a.ErrorClass)
	assert.Nil(t, a.TxHash)
	assert.Equal(t, []sale.TokenID{1}, inv.get())
}

func TestSubmit_SecondSubmitWhileAwaitingConfirmation(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewGateway(t)
	confirming := make(chan struct{})
	release := make(chan struct{})

	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(constants, nil).Once()
	gw.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(0)).Return(openSale(0, ether(0)), nil).Once()
	gw.EXPECT().ReadUnitCost(mock.Anything, mock.Anything).Return(ether(1), nil).Once()
	gw.EXPECT().SubmitPurchase(mock.Anything, sale.TokenID(0), uint64(1), ether(1)).Return(handle(1), nil).Once()
	gw.EXPECT().AwaitConfirmation(mock.Anything, handle(1)).
		RunAndReturn(func(context.Context, sale.TxHandle) error {
			close(confirming)
			<-release
			return nil
		}).Once()

	c, _ := newController(t, gw, nil, trade.Config{})

	first, err := c.Submit(ctx, 0, "1")
	require.NoError(t, err)
	<-confirming

	a, err := c.AttemptStatus(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, trade.StateAwaitingConfirmation, a.State)

	second, err := c.Submit(ctx, 0, "1")
	require.ErrorIs(t, err, sale.ErrAttemptInProgress)
	assert.Empty(t, second)

	close(release)
	assert.Equal(t, trade.StateSucceeded, wait(t, c, first).State)
}

func TestSubmit_DifferentTokensRunConcurrently(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewGateway(t)
	release := make(chan struct{})
	var confirming sync.WaitGroup
	confirming.Add(2)

	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(constants, nil).Twice()
	gw.EXPECT().ReadSaleSnapshot(mock.Anything, mock.AnythingOfType("sale.TokenID")).
		RunAndReturn(func(_ context.Context, id sale.TokenID) (sale.Snapshot, error) {
			return openSale(id, ether(0)), nil
		}).Twice()
	gw.EXPECT().ReadUnitCost(mock.Anything, mock.Anything).Return(ether(1), nil).Twice()
	gw.EXPECT().SubmitPurchase(mock.Anything, mock.AnythingOfType("sale.TokenID"), uint64(2), ether(2)).
		RunAndReturn(func(_ context.Context, id sale.TokenID, _ uint64, _ *big.Int) (sale.TxHandle, error) {
			return handle(int64(id) + 10), nil
		}).Twice()
	gw.EXPECT().AwaitConfirmation(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, sale.TxHandle) error {
			confirming.Done()
			<-release
			return nil
		}).Twice()

	c, inv := newController(t, gw, nil, trade.Config{})

	a1, err := c.Submit(ctx, 1, "2")
	require.NoError(t, err)
	a2, err := c.Submit(ctx, 2, "2")
	require.NoError(t, err)

	confirming.Wait()
	close(release)

	assert.Equal(t, trade.StateSucceeded, wait(t, c, a1).State)
	assert.Equal(t, trade.StateSucceeded, wait(t, c, a2).State)
	assert.ElementsMatch(t, []sale.TokenID{1, 2}, inv.get())
}

func TestSubmit_ConfirmationTimeout(t *testing.T) {
	gw := mocks.NewGateway(t)

	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(constants, nil).Once()
	gw.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(0)).Return(openSale(0, ether(0)), nil).Once()
	gw.EXPECT().ReadUnitCost(mock.Anything, mock.Anything).Return(ether(1), nil).Once()
	gw.EXPECT().SubmitPurchase(mock.Anything, sale.TokenID(0), uint64(1), ether(1)).Return(handle(1), nil).Once()
	gw.EXPECT().AwaitConfirmation(mock.Anything, handle(1)).
		RunAndReturn(func(ctx context.Context, _ sale.TxHandle) error {
			<-ctx.Done()
			return ctx.Err()
		}).Once()

	c, inv := newController(t, gw, nil, trade.Config{ConfirmationTimeout: 20 * time.Millisecond})

	id, err := c.Submit(context.Background(), 0, "1")
	require.NoError(t, err)

	a := wait(t, c, id)
	assert.Equal(t, trade.StateFailed, a.State)
	assert.Equal(t, "TransactionTimedOut", a.ErrorCode)
	assert.NotNil(t, a.TxHash)
	assert.Equal(t, []sale.TokenID{0}, inv.get())
}

func TestSubmit_Reverted(t *testing.T) {
	gw := mocks.NewGateway(t)

	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(constants, nil).Once()
	gw.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(0)).Return(openSale(0, ether(0)), nil).Once()
	gw.EXPECT().ReadUnitCost(mock.Anything, mock.Anything).Return(ether(1), nil).Once()
	gw.EXPECT().SubmitPurchase(mock.Anything, sale.TokenID(0), uint64(1), ether(1)).Return(handle(1), nil).Once()
	gw.EXPECT().AwaitConfirmation(mock.Anything, handle(1)).Return(sale.ErrTransactionReverted).Once()

	c, inv := newController(t, gw, nil, trade.Config{})

	id, err := c.Submit(context.Background(), 0, "1")
	require.NoError(t, err)

	a := wait(t, c, id)
	assert.Equal(t, "TransactionReverted", a.ErrorCode)
	assert.Equal(t, sale.ClassChain, a.ErrorClass)
	assert.Equal(t, []sale.TokenID{0}, inv.get())
}

func TestSubmit_UnclassifiedReadErrorIsChainRead(t *testing.T) {
	gw := mocks.NewGateway(t)
	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(sale.Constants{}, errors.New("dial tcp: connection refused")).Once()

	c, _ := newController(t, gw, nil, trade.Config{})

	id, err := c.Submit(context.Background(), 0, "1")
	require.NoError(t, err)

	a := wait(t, c, id)
	assert.Equal(t, "ChainReadError", a.ErrorCode)
	assert.Contains(t, a.ErrorMessage, "connection refused")
}

func TestSubmit_CostComesFromFreshRead(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewGateway(t)
	moved := ether(42_000)

	// a buyer moved the curve since any earlier page read
	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(constants, nil).Once()
	gw.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(0)).Return(openSale(0, moved), nil).Once()
	gw.EXPECT().ReadUnitCost(mock.Anything, moved).Return(big.NewInt(5e10), nil).Once()
	gw.EXPECT().SubmitPurchase(mock.Anything, sale.TokenID(0), uint64(100), big.NewInt(5e12)).Return(handle(1), nil).Once()
	gw.EXPECT().AwaitConfirmation(mock.Anything, handle(1)).Return(nil).Once()

	c, _ := newController(t, gw, nil, trade.Config{})
	id, err := c.Submit(ctx, 0, "100")
	require.NoError(t, err)

	a := wait(t, c, id)
	assert.Equal(t, trade.StateSucceeded, a.State)
	assert.Equal(t, 0, a.Quote.SoldAt.Cmp(moved))
}

func TestSubmit_OutlivesCallerContext(t *testing.T) {
	gw := mocks.NewGateway(t)
	ctx, cancel := context.WithCancel(context.Background())
	signing := make(chan struct{})
	release := make(chan struct{})

	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(constants, nil).Once()
	gw.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(0)).Return(openSale(0, ether(0)), nil).Once()
	gw.EXPECT().ReadUnitCost(mock.Anything, mock.Anything).Return(ether(1), nil).Once()
	gw.EXPECT().SubmitPurchase(mock.Anything, sale.TokenID(0), uint64(1), ether(1)).
		RunAndReturn(func(ctx context.Context, _ sale.TokenID, _ uint64, _ *big.Int) (sale.TxHandle, error) {
			close(signing)
			<-release
			if ctx.Err() != nil {
				return sale.TxHandle{}, ctx.Err()
			}
			return handle(1), nil
		}).Once()
	gw.EXPECT().AwaitConfirmation(mock.Anything, handle(1)).Return(nil).Once()

	c, _ := newController(t, gw, nil, trade.Config{})
	id, err := c.Submit(ctx, 0, "1")
	require.NoError(t, err)

	<-signing
	cancel()
	close(release)

	assert.Equal(t, trade.StateSucceeded, wait(t, c, id).State)
}

func TestSubmit_PersistsOutcome(t *testing.T) {
	gw := mocks.NewGateway(t)
	store := mocks.NewStore(t)

	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(constants, nil).Once()
	gw.EXPECT().ReadSaleSnapshot(mock.Anything, sale.TokenID(0)).Return(openSale(0, ether(0)), nil).Once()
	gw.EXPECT().ReadUnitCost(mock.Anything, mock.Anything).Return(ether(1), nil).Once()
	gw.EXPECT().SubmitPurchase(mock.Anything, sale.TokenID(0), uint64(2), ether(2)).Return(handle(7), nil).Once()
	gw.EXPECT().AwaitConfirmation(mock.Anything, handle(7)).Return(nil).Once()

	store.EXPECT().SaveAttempt(mock.Anything, mock.MatchedBy(func(a *trade.Attempt) bool {
		return a.State == trade.StateSucceeded && a.AmountUnits == 2 && a.TxHash != nil && *a.TxHash == handle(7).Hash
	})).Return(nil).Once()
	store.EXPECT().SaveAttempt(mock.Anything, mock.MatchedBy(func(a *trade.Attempt) bool {
		return a.State == trade.StateFailed && a.ErrorCode == "InvalidAmount"
	})).Return(errors.New("db down")).Once()

	c, _ := newController(t, gw, store, trade.Config{})

	id, err := c.Submit(context.Background(), 0, "2")
	require.NoError(t, err)
	assert.Equal(t, trade.StateSucceeded, wait(t, c, id).State)

	// a failing store never changes the outcome
	id, err = c.Submit(context.Background(), 0, "nope")
	require.ErrorIs(t, err, sale.ErrInvalidAmount)
	assert.Equal(t, trade.StateFailed, wait(t, c, id).State)
}

func TestAttemptStatus_FallsBackToStore(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewGateway(t)
	store := mocks.NewStore(t)
	stored := &trade.Attempt{ID: "old", State: trade.StateSucceeded}

	store.EXPECT().GetAttempt(ctx, "old").Return(stored, nil).Once()
	store.EXPECT().GetAttempt(ctx, "missing").Return(nil, trade.ErrAttemptNotFound).Once()

	c, _ := newController(t, gw, store, trade.Config{})

	a, err := c.AttemptStatus(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, stored, a)

	_, err = c.AttemptStatus(ctx, "missing")
	require.ErrorIs(t, err, trade.ErrAttemptNotFound)
}

func TestAttemptStatus_UnknownWithoutStore(t *testing.T) {
	c, _ := newController(t, mocks.NewGateway(t), nil, trade.Config{})
	_, err := c.AttemptStatus(context.Background(), "nope")
	require.ErrorIs(t, err, trade.ErrAttemptNotFound)
}

func TestHistory_InMemoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	c, _ := newController(t, mocks.NewGateway(t), nil, trade.Config{HistoryLimit: 2})

	var ids []string
	for _, in := range []string{"x", "y", "z"} {
		id, _ := c.Submit(ctx, 4, in)
		ids = append(ids, id)
		time.Sleep(time.Millisecond)
	}
	_, _ = c.Submit(ctx, 5, "other")

	got, err := c.History(ctx, 4, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ids[2], got[0].ID)
	assert.Equal(t, ids[1], got[1].ID)
}

func TestHistory_UsesStore(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore(t)
	store.EXPECT().ListAttempts(ctx, sale.TokenID(3), trade.DefaultHistoryLimit).Return([]*trade.Attempt{{ID: "a"}}, nil).Once()

	c, _ := newController(t, mocks.NewGateway(t), store, trade.Config{})
	got, err := c.History(ctx, 3, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestOnSnapshotInvalidated_Unsubscribe(t *testing.T) {
	gw := mocks.NewGateway(t)
	gw.EXPECT().ReadSaleConstants(mock.Anything).Return(sale.Constants{}, sale.ErrUnsupportedChain).Once()

	c := trade.NewController(gw, nil, trade.Config{}, zap.NewNop())
	inv := &invalidations{}
	unsubscribe := c.OnSnapshotInvalidated(inv.add)
	unsubscribe()
	unsubscribe()

	id, err := c.Submit(context.Background(), 0, "1")
	require.NoError(t, err)
	a := wait(t, c, id)
	assert.Equal(t, "UnsupportedChain", a.ErrorCode)
	assert.Empty(t, inv.get())
}

func TestClose_WaitsAndRejects(t *testing.T) {
	gw := mocks.NewGateway(t)
	release := make(chan struct{})
	started := make(chan struct{})

	gw.EXPECT().ReadSaleConstants(mock.Anything).
		RunAndReturn(func(context.Context) (sale.Constants, error) {
			close(started)
			<-release
			return sale.Constants{}, sale.ErrUnsupportedChain
		}).Once()

	c := trade.NewController(gw, nil, trade.Config{}, zap.NewNop())
	id, err := c.Submit(context.Background(), 0, "1")
	require.NoError(t, err)
	<-started

	short, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.Error(t, c.Close(short))

	_, err = c.Submit(context.Background(), 1, "1")
	require.ErrorIs(t, err, trade.ErrClosed)

	close(release)
	require.NoError(t, c.Close(context.Background()))
	a, err := c.AttemptStatus(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, trade.StateFailed, a.State)
}

func TestSubmit_OperatorCeiling(t *testing.T) {
	c, inv := newController(t, mocks.NewGateway(t), nil, trade.Config{MaxAmountUnits: 100})

	id, err := c.Submit(context.Background(), 0, "101")
	require.ErrorIs(t, err, sale.ErrInvalidAmount)
	assert.Contains(t, err.Error(), "operator limit is 100")
	assert.Equal(t, trade.StateFailed, wait(t, c, id).State)
	assert.Empty(t, inv.get())
}

func TestSubmit_InvalidInputAfterClose(t *testing.T) {
	// No expectations: a closed controller must not record or persist anything.
	store := mocks.NewStore(t)
	c := trade.NewController(mocks.NewGateway(t), store, trade.Config{}, zap.NewNop())
	require.NoError(t, c.Close(context.Background()))

	id, err := c.Submit(context.Background(), 0, "abc")
	require.ErrorIs(t, err, trade.ErrClosed)
	assert.Empty(t, id)
}
