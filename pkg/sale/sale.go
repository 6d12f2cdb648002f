// Package sale holds the value objects describing a bonding-curve token sale and
// the purchase requests made against it.
package sale

import (
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// Decimals is the fixed-point scale used by the sale contract for token units and value.
	Decimals = 18

	// MinPurchaseUnits is the smallest purchase accepted by the contract, in whole token units.
	MinPurchaseUnits = 1
	// MaxPurchaseUnits is the largest purchase accepted by the contract, in whole token units.
	MaxPurchaseUnits = 10000
)

// TokenID identifies a sale by its index in the factory.
type TokenID uint64

func (id TokenID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseTokenID parses a decimal sale index.
func ParseTokenID(s string) (TokenID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return TokenID(v), nil
}

// Constants are the sale-wide parameters of a factory deployment.
// They never change for a deployment and are cached per chain.
type Constants struct {
	ChainID    uint64
	Target     *big.Int // raise required to close a sale
	TokenLimit *big.Int // max sellable token units
	Fee        *big.Int // listing fee
}

// Snapshot is a point-in-time read of one sale.
type Snapshot struct {
	ID      TokenID
	Token   common.Address
	Name    string
	Creator common.Address
	Sold    *big.Int
	Raised  *big.Int
	IsOpen  bool
}

// ClosedFor reports whether the sale must be treated as closed under c.
// The open flag may lag behind sold/raised, so both limits are checked as well.
func (s Snapshot) ClosedFor(c Constants) bool {
	if !s.IsOpen {
		return true
	}
	if s.Sold != nil && c.TokenLimit != nil && s.Sold.Cmp(c.TokenLimit) >= 0 {
		return true
	}
	if s.Raised != nil && c.Target != nil && s.Raised.Cmp(c.Target) >= 0 {
		return true
	}
	return false
}

// PurchaseRequest is a validated, user-authored purchase size.
type PurchaseRequest struct {
	AmountUnits uint64 `validate:"min=1,max=10000"`
}

// Quote is the cost of a purchase derived from a specific sold amount.
type Quote struct {
	SoldAt      *big.Int
	UnitCost    *big.Int
	AmountUnits uint64
	TotalCost   *big.Int
}

// TxHandle references a purchase transaction accepted by the wallet.
type TxHandle struct {
	Hash    common.Hash
	From    common.Address
	ChainID uint64
}
