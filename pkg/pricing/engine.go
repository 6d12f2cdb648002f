// Package pricing derives purchase economics from sale state. The curve itself
// lives in the sale contract; the engine composes contract unit costs into quotes
// using integer fixed-point arithmetic only.
package pricing

import (
	"context"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/adiboy-23/fun-pump/internal/metrics"
	"github.com/adiboy-23/fun-pump/pkg/sale"
)

// CostReader reads the contract's unit cost for a given sold amount.
//
//go:generate mockery --name CostReader --output mocks --outpkg mocks --filename mock_cost_reader.go --with-expecter
type CostReader interface {
	ReadUnitCost(ctx context.Context, sold *big.Int) (*big.Int, error)
}

// Engine computes quotes and progress. It keeps no sale state between calls.
type Engine struct {
	costs CostReader
}

// NewEngine creates a pricing engine backed by costs.
func NewEngine(costs CostReader) *Engine {
	return &Engine{costs: costs}
}

// UnitCostAt returns the price of the next unit when sold units have been sold.
func (e *Engine) UnitCostAt(ctx context.Context, sold *big.Int) (*big.Int, error) {
	if sold == nil || sold.Sign() < 0 {
		return nil, fmt.Errorf("invalid sold amount %v", sold)
	}
	cost, err := e.costs.ReadUnitCost(ctx, sold)
	if err != nil {
		return nil, err
	}
	if cost == nil || cost.Sign() < 0 {
		return nil, fmt.Errorf("%w: contract returned invalid unit cost %v", sale.ErrChainRead, cost)
	}
	return cost, nil
}

// Quote prices amountUnits whole units at the unit cost for sold.
// TotalCost is exactly UnitCost * amountUnits.
func (e *Engine) Quote(ctx context.Context, sold *big.Int, amountUnits uint64) (sale.Quote, error) {
	if err := (sale.PurchaseRequest{AmountUnits: amountUnits}).Validate(); err != nil {
		return sale.Quote{}, err
	}

	unitCost, err := e.UnitCostAt(ctx, sold)
	if err != nil {
		return sale.Quote{}, err
	}

	total := new(big.Int).Mul(unitCost, new(big.Int).SetUint64(amountUnits))
	metrics.QuotesComputed.Inc()

	return sale.Quote{
		SoldAt:      new(big.Int).Set(sold),
		UnitCost:    new(big.Int).Set(unitCost),
		AmountUnits: amountUnits,
		TotalCost:   total,
	}, nil
}

// ProgressRatio returns min(raised/target, 1). A zero target is ErrProgressUndefined.
func ProgressRatio(raised, target *big.Int) (float64, error) {
	r, err := progress(raised, target)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}

// ProgressPercent returns the clamped progress scaled to 0-100 with two decimals.
func ProgressPercent(raised, target *big.Int) (string, error) {
	r, err := progress(raised, target)
	if err != nil {
		return "", err
	}
	pct := decimal.NewFromBigInt(r.Num(), 0).
		Div(decimal.NewFromBigInt(r.Denom(), 0)).
		Mul(decimal.NewFromInt(100))
	return pct.StringFixed(2), nil
}

func progress(raised, target *big.Int) (*big.Rat, error) {
	if target == nil || target.Sign() <= 0 {
		return nil, sale.ErrProgressUndefined
	}
	if raised == nil || raised.Sign() <= 0 {
		return new(big.Rat), nil
	}
	if raised.Cmp(target) >= 0 {
		return big.NewRat(1, 1), nil
	}
	return new(big.Rat).SetFrac(raised, target), nil
}

// IsSaleClosed reports whether no further purchases may be made.
func IsSaleClosed(snapshot sale.Snapshot, constants sale.Constants) bool {
	return snapshot.ClosedFor(constants)
}
