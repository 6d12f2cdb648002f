package attemptstore

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/uptrace/bun"

	"github.com/adiboy-23/fun-pump/pkg/sale"
	"github.com/adiboy-23/fun-pump/pkg/trade"
)

// AttemptDao maps a settled purchase attempt to the 'purchase_attempts' table.
// Amounts are base units stored as numeric(78,0), wide enough for any uint256.
type AttemptDao struct {
	bun.BaseModel `bun:"table:purchase_attempts,alias:pa"`
	ID            string    `bun:"id,pk,type:varchar(36)"`
	TokenID       int64     `bun:"token_id,notnull"`
	Input         string    `bun:"input,notnull,type:varchar(64)"`
	AmountUnits   int64     `bun:"amount_units,notnull"`
	State         string    `bun:"state,notnull,type:varchar(32)"`
	SoldAt        *string   `bun:"sold_at,type:numeric(78,0)"`
	UnitCost      *string   `bun:"unit_cost,type:numeric(78,0)"`
	TotalCost     *string   `bun:"total_cost,type:numeric(78,0)"`
	TxHash        *string   `bun:"tx_hash,type:varchar(66)"`
	Account       *string   `bun:"account,type:varchar(42)"`
	ChainID       int64     `bun:"chain_id,notnull,default:0"`
	ErrorCode     *string   `bun:"error_code,type:varchar(64)"`
	ErrorClass    *string   `bun:"error_class,type:varchar(32)"`
	ErrorMessage  *string   `bun:"error_message,type:text"`
	CreatedAt     time.Time `bun:"created_at,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,notnull"`
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func bigPtr(v *big.Int) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}

func parseBig(s *string) *big.Int {
	if s == nil {
		return nil
	}
	v, ok := new(big.Int).SetString(*s, 10)
	if !ok {
		return nil
	}
	return v
}

// toAttemptDao converts a trade.Attempt to AttemptDao.
func toAttemptDao(a *trade.Attempt) *AttemptDao {
	dao := &AttemptDao{
		ID:           a.ID,
		TokenID:      int64(a.TokenID),
		Input:        a.Input,
		AmountUnits:  int64(a.AmountUnits),
		State:        string(a.State),
		ChainID:      int64(a.ChainID),
		ErrorCode:    strPtr(a.ErrorCode),
		ErrorMessage: strPtr(a.ErrorMessage),
		CreatedAt:    a.CreatedAt.UTC(),
		UpdatedAt:    a.UpdatedAt.UTC(),
	}
	if len(dao.Input) > 64 {
		dao.Input = dao.Input[:64]
	}
	if a.Quote != nil {
		dao.SoldAt = bigPtr(a.Quote.SoldAt)
		dao.UnitCost = bigPtr(a.Quote.UnitCost)
		dao.TotalCost = bigPtr(a.Quote.TotalCost)
	}
	if a.TxHash != nil {
		dao.TxHash = strPtr(a.TxHash.Hex())
	}
	if a.Account != (common.Address{}) {
		dao.Account = strPtr(a.Account.Hex())
	}
	if a.ErrorCode != "" {
		dao.ErrorClass = strPtr(a.ErrorClass.String())
	}
	return dao
}

// toAttempt converts an AttemptDao to trade.Attempt.
func toAttempt(dao *AttemptDao) *trade.Attempt {
	a := &trade.Attempt{
		ID:          dao.ID,
		TokenID:     sale.TokenID(dao.TokenID),
		Input:       dao.Input,
		AmountUnits: uint64(dao.AmountUnits),
		State:       trade.State(dao.State),
		ChainID:     uint64(dao.ChainID),
		CreatedAt:   dao.CreatedAt,
		UpdatedAt:   dao.UpdatedAt,
	}
	if dao.TotalCost != nil {
		a.Quote = &sale.Quote{
			SoldAt:      parseBig(dao.SoldAt),
			UnitCost:    parseBig(dao.UnitCost),
			AmountUnits: a.AmountUnits,
			TotalCost:   parseBig(dao.TotalCost),
		}
	}
	if dao.TxHash != nil {
		h := common.HexToHash(*dao.TxHash)
		a.TxHash = &h
	}
	if dao.Account != nil {
		a.Account = common.HexToAddress(*dao.Account)
	}
	if dao.ErrorCode != nil {
		a.ErrorCode = *dao.ErrorCode
	}
	if dao.ErrorClass != nil {
		a.ErrorClass = sale.ParseClass(*dao.ErrorClass)
	}
	if dao.ErrorMessage != nil {
		a.ErrorMessage = *dao.ErrorMessage
	}
	return a
}
