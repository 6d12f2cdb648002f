package sale

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// ParsePurchaseRequest parses user input into a PurchaseRequest.
// Only plain base-10 digits are accepted; signs, decimals, exponents and
// whitespace inside the number are rejected with ErrInvalidAmount.
func ParsePurchaseRequest(input string) (PurchaseRequest, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return PurchaseRequest{}, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return PurchaseRequest{}, fmt.Errorf("%w: %q is not a whole number", ErrInvalidAmount, input)
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return PurchaseRequest{}, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}
	req := PurchaseRequest{AmountUnits: n}
	if err := req.Validate(); err != nil {
		return PurchaseRequest{}, err
	}
	return req, nil
}

// Validate checks the amount range.
func (r PurchaseRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %d out of range [%d, %d]", ErrInvalidAmount, r.AmountUnits, MinPurchaseUnits, MaxPurchaseUnits)
	}
	return nil
}

// UnitsToBaseUnits scales whole token units to the contract's 18-decimal representation.
func UnitsToBaseUnits(units uint64) *big.Int {
	v := new(big.Int).SetUint64(units)
	return v.Mul(v, scale)
}

var scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

// FormatUnits renders an 18-decimal fixed-point value as a decimal string
// with trailing zeros removed.
func FormatUnits(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -Decimals).String()
}

// ParseUnits converts a decimal string to its 18-decimal fixed-point value.
// More than 18 fractional digits is an error rather than a silent truncation.
func ParseUnits(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("parse units: %w", err)
	}
	shifted := d.Shift(Decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("parse units: %s has more than %d decimals", s, Decimals)
	}
	return shifted.BigInt(), nil
}
