package sale

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), scale)
}

func TestParsePurchaseRequest(t *testing.T) {
	valid := map[string]uint64{
		"1":      1,
		"5":      5,
		" 42 ":   42,
		"10000":  10000,
		"000007": 7,
	}
	for in, want := range valid {
		req, err := ParsePurchaseRequest(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, req.AmountUnits, "input %q", in)
	}

	invalid := []string{"", "   ", "0", "10001", "-1", "+5", "1.5", "1e3", "abc", "5 5", "0x10", "99999999999999999999999"}
	for _, in := range invalid {
		_, err := ParsePurchaseRequest(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, ErrInvalidAmount), "input %q: %v", in, err)
		assert.Equal(t, ClassInput, ClassOf(err))
	}
}

func TestPurchaseRequest_Validate(t *testing.T) {
	assert.NoError(t, PurchaseRequest{AmountUnits: MinPurchaseUnits}.Validate())
	assert.NoError(t, PurchaseRequest{AmountUnits: MaxPurchaseUnits}.Validate())
	assert.ErrorIs(t, PurchaseRequest{AmountUnits: 0}.Validate(), ErrInvalidAmount)
	assert.ErrorIs(t, PurchaseRequest{AmountUnits: MaxPurchaseUnits + 1}.Validate(), ErrInvalidAmount)
}

func TestSnapshot_ClosedFor(t *testing.T) {
	c := Constants{Target: ether(3), TokenLimit: ether(500000)}

	tests := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{"open and below limits", Snapshot{Sold: ether(10), Raised: ether(1), IsOpen: true}, false},
		{"flag closed", Snapshot{Sold: ether(10), Raised: ether(1), IsOpen: false}, true},
		{"raised reached target with stale open flag", Snapshot{Sold: ether(10), Raised: ether(3), IsOpen: true}, true},
		{"sold reached limit with stale open flag", Snapshot{Sold: ether(500000), Raised: ether(1), IsOpen: true}, true},
		{"raised above target", Snapshot{Sold: ether(10), Raised: ether(4), IsOpen: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snap.ClosedFor(c))
		})
	}
}

func TestFormatAndParseUnits(t *testing.T) {
	assert.Equal(t, "0", FormatUnits(nil))
	assert.Equal(t, "1", FormatUnits(ether(1)))
	assert.Equal(t, "0.0001", FormatUnits(big.NewInt(100000000000000)))
	assert.Equal(t, "500000", FormatUnits(ether(500000)))

	v, err := ParseUnits("0.0002")
	require.NoError(t, err)
	assert.Equal(t, "200000000000000", v.String())

	_, err = ParseUnits("0.0000000000000000001")
	assert.Error(t, err)
	_, err = ParseUnits("nope")
	assert.Error(t, err)
}

func TestUnitsToBaseUnits(t *testing.T) {
	assert.Equal(t, ether(10000).String(), UnitsToBaseUnits(10000).String())
}

func TestClassOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrChainRead, errors.New("connection refused"))
	assert.Equal(t, ClassChain, ClassOf(err))
	assert.Equal(t, "ChainReadError", CodeOf(err))
	assert.Equal(t, "chain read failed: connection refused", err.Error())
	assert.Equal(t, ClassUnknown, ClassOf(errors.New("plain")))
	assert.Equal(t, "authorization", ErrSignatureRejected.Class.String())
}

func TestParseClass(t *testing.T) {
	for _, c := range []Class{ClassInput, ClassConnectivity, ClassAuthorization, ClassChain} {
		assert.Equal(t, c, ParseClass(c.String()))
	}
	assert.Equal(t, ClassUnknown, ParseClass(""))
	assert.Equal(t, ClassUnknown, ParseClass("bogus"))
}

func TestParseTokenID(t *testing.T) {
	id, err := ParseTokenID("3")
	require.NoError(t, err)
	assert.Equal(t, TokenID(3), id)
	assert.Equal(t, "3", id.String())

	_, err = ParseTokenID("-1")
	assert.Error(t, err)
}
