package trade

import (
	"context"
	"math/big"

	"github.com/adiboy-23/fun-pump/pkg/sale"
)

// Gateway is the chain surface a purchase needs.
//
//go:generate mockery --name Gateway --output mocks --outpkg mocks --filename mock_gateway.go --with-expecter
type Gateway interface {
	ReadSaleConstants(ctx context.Context) (sale.Constants, error)
	ReadSaleSnapshot(ctx context.Context, id sale.TokenID) (sale.Snapshot, error)
	ReadUnitCost(ctx context.Context, sold *big.Int) (*big.Int, error)
	SubmitPurchase(ctx context.Context, id sale.TokenID, amountUnits uint64, totalCost *big.Int) (sale.TxHandle, error)
	AwaitConfirmation(ctx context.Context, h sale.TxHandle) error
}

// Store persists settled attempts.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	SaveAttempt(ctx context.Context, a *Attempt) error
	GetAttempt(ctx context.Context, id string) (*Attempt, error)
	ListAttempts(ctx context.Context, tokenID sale.TokenID, limit int) ([]*Attempt, error)
}

// Service is the purchase surface exposed to the presentation layer.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Submit(ctx context.Context, tokenID sale.TokenID, input string) (string, error)
	AttemptStatus(ctx context.Context, id string) (*Attempt, error)
	Wait(ctx context.Context, id string) (*Attempt, error)
	History(ctx context.Context, tokenID sale.TokenID, limit int) ([]*Attempt, error)
}
