package pricing

import (
	"context"
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/adiboy-23/fun-pump/pkg/pricing/mocks"
	"github.com/adiboy-23/fun-pump/pkg/sale"
)

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

func TestEngine_Quote_ScenarioA(t *testing.T) {
	ctx := context.Background()
	sold := ether(1000)
	unit := big.NewInt(100_000_000_000_000) // 0.0001

	costs := mocks.NewCostReader(t)
	costs.EXPECT().ReadUnitCost(ctx, sold).Return(unit, nil).Once()

	q, err := NewEngine(costs).Quote(ctx, sold, 5)
	if err != nil {
		t.Fatalf("Quote() failed: %v", err)
	}
	if got, want := q.TotalCost.String(), "500000000000000"; got != want {
		t.Fatalf("TotalCost = %s, want %s", got, want)
	}
	if q.UnitCost.Cmp(unit) != 0 || q.AmountUnits != 5 || q.SoldAt.Cmp(sold) != 0 {
		t.Fatalf("unexpected quote %+v", q)
	}
}

func TestEngine_Quote_TotalIsExactProduct(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))

	costs := mocks.NewCostReader(t)
	costs.EXPECT().ReadUnitCost(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, sold *big.Int) (*big.Int, error) {
			// Any deterministic positive function of sold will do.
			c := new(big.Int).Div(sold, big.NewInt(1_000_000))
			return c.Add(c, big.NewInt(1e13)), nil
		})

	e := NewEngine(costs)
	for i := 0; i < 500; i++ {
		sold := new(big.Int).Mul(big.NewInt(rng.Int63n(500_000)), big.NewInt(1e18))
		sold.Add(sold, big.NewInt(rng.Int63()))
		n := uint64(rng.Intn(sale.MaxPurchaseUnits) + 1)

		q, err := e.Quote(ctx, sold, n)
		if err != nil {
			t.Fatalf("Quote(%s, %d) failed: %v", sold, n, err)
		}
		want := new(big.Int).Mul(q.UnitCost, new(big.Int).SetUint64(n))
		if q.TotalCost.Cmp(want) != 0 {
			t.Fatalf("Quote(%s, %d).TotalCost = %s, want %s", sold, n, q.TotalCost, want)
		}
	}
}

func TestEngine_Quote_InvalidAmount(t *testing.T) {
	// No expectations: an out-of-range amount must not reach the chain.
	costs := mocks.NewCostReader(t)
	e := NewEngine(costs)

	for _, n := range []uint64{0, sale.MaxPurchaseUnits + 1} {
		_, err := e.Quote(context.Background(), ether(1), n)
		if !errors.Is(err, sale.ErrInvalidAmount) {
			t.Fatalf("Quote(n=%d) error = %v, want ErrInvalidAmount", n, err)
		}
	}
}

func TestEngine_Quote_ChainError(t *testing.T) {
	ctx := context.Background()
	readErr := errors.New("connection refused")

	costs := mocks.NewCostReader(t)
	costs.EXPECT().ReadUnitCost(ctx, mock.Anything).Return(nil, readErr).Once()

	_, err := NewEngine(costs).Quote(ctx, ether(1), 1)
	if !errors.Is(err, readErr) {
		t.Fatalf("expected read error to propagate, got %v", err)
	}
}

func TestEngine_Quote_RejectsNegativeCost(t *testing.T) {
	ctx := context.Background()

	costs := mocks.NewCostReader(t)
	costs.EXPECT().ReadUnitCost(ctx, mock.Anything).Return(big.NewInt(-1), nil).Once()

	_, err := NewEngine(costs).Quote(ctx, ether(1), 1)
	if !errors.Is(err, sale.ErrChainRead) {
		t.Fatalf("expected ErrChainRead, got %v", err)
	}
}

func TestEngine_UnitCostAt_RejectsNegativeSold(t *testing.T) {
	costs := mocks.NewCostReader(t)
	if _, err := NewEngine(costs).UnitCostAt(context.Background(), big.NewInt(-5)); err == nil {
		t.Fatal("expected error for negative sold amount")
	}
}

func TestProgressRatio(t *testing.T) {
	target := ether(3)

	tests := []struct {
		name   string
		raised *big.Int
		want   float64
	}{
		{"zero", big.NewInt(0), 0},
		{"nil raised", nil, 0},
		{"half", new(big.Int).Div(ether(3), big.NewInt(2)), 0.5},
		{"scenario C", new(big.Int).Add(ether(2), big.NewInt(999_999_000_000_000_000)), 2.999999 / 3},
		{"exact", ether(3), 1},
		{"over target clamps", ether(4), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProgressRatio(tt.raised, target)
			if err != nil {
				t.Fatalf("ProgressRatio() failed: %v", err)
			}
			if diff := got - tt.want; diff > 1e-12 || diff < -1e-12 {
				t.Fatalf("ProgressRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProgressRatio_Bounded(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		raised := big.NewInt(rng.Int63())
		target := big.NewInt(rng.Int63n(1<<40) + 1)
		got, err := ProgressRatio(raised, target)
		if err != nil {
			t.Fatalf("ProgressRatio(%s, %s) failed: %v", raised, target, err)
		}
		if got < 0 || got > 1 {
			t.Fatalf("ProgressRatio(%s, %s) = %v, out of [0,1]", raised, target, got)
		}
	}
}

func TestProgressRatio_ZeroTarget(t *testing.T) {
	if _, err := ProgressRatio(ether(1), big.NewInt(0)); !errors.Is(err, sale.ErrProgressUndefined) {
		t.Fatalf("expected ErrProgressUndefined, got %v", err)
	}
	if _, err := ProgressPercent(ether(1), nil); !errors.Is(err, sale.ErrProgressUndefined) {
		t.Fatalf("expected ErrProgressUndefined, got %v", err)
	}
}

func TestProgressPercent(t *testing.T) {
	got, err := ProgressPercent(ether(1), ether(3))
	if err != nil {
		t.Fatalf("ProgressPercent() failed: %v", err)
	}
	if got != "33.33" {
		t.Fatalf("ProgressPercent() = %s, want 33.33", got)
	}

	got, _ = ProgressPercent(ether(9), ether(3))
	if got != "100.00" {
		t.Fatalf("ProgressPercent() = %s, want 100.00", got)
	}
}

func TestIsSaleClosed_Monotonic(t *testing.T) {
	c := sale.Constants{Target: ether(3), TokenLimit: ether(500000)}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 500; i++ {
		s := sale.Snapshot{
			Sold:   new(big.Int).Mul(big.NewInt(rng.Int63n(600_000)), big.NewInt(1e18)),
			Raised: new(big.Int).Mul(big.NewInt(rng.Int63n(4_000)), big.NewInt(1e15)),
			IsOpen: rng.Intn(2) == 0,
		}
		if !IsSaleClosed(s, c) {
			continue
		}
		grown := sale.Snapshot{
			Sold:   new(big.Int).Add(s.Sold, big.NewInt(rng.Int63())),
			Raised: new(big.Int).Add(s.Raised, big.NewInt(rng.Int63())),
			IsOpen: s.IsOpen,
		}
		if !IsSaleClosed(grown, c) {
			t.Fatalf("sale reopened: %+v -> %+v", s, grown)
		}
	}
}

func TestIsSaleClosed_StaleOpenFlag(t *testing.T) {
	c := sale.Constants{Target: ether(3), TokenLimit: ether(500000)}
	s := sale.Snapshot{Sold: ether(10), Raised: ether(3), IsOpen: true}
	if !IsSaleClosed(s, c) {
		t.Fatal("expected sale to be closed once raised reaches target")
	}
}
