package service

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/adiboy-23/fun-pump/pkg/market"
	"github.com/adiboy-23/fun-pump/pkg/sale"
	"github.com/adiboy-23/fun-pump/pkg/trade"
)

// SubmitRequest is the body of POST /sales/{id}/purchases.
// Amount is the raw user input in whole token units.
type SubmitRequest struct {
	Amount string `json:"amount"`
}

// SubmitResponse carries the ID of the started attempt.
type SubmitResponse struct {
	AttemptID string `json:"attempt_id"`
}

// SwitchRequest is the optional body of POST /network/switch.
type SwitchRequest struct {
	ChainID uint64 `json:"chain_id"`
}

type SwitchResponse struct {
	ChainID uint64 `json:"chain_id"`
}

type ConnectResponse struct {
	Account string `json:"account"`
}

type NetworkResponse struct {
	ChainID         uint64 `json:"chain_id"`
	Supported       bool   `json:"supported"`
	ExpectedChainID uint64 `json:"expected_chain_id"`
	ExpectedName    string `json:"expected_name"`
}

// SaleResponse is a sale with its derived presentation values. Amounts are
// decimal strings in whole units.
type SaleResponse struct {
	ID              sale.TokenID `json:"id"`
	Token           string       `json:"token"`
	Name            string       `json:"name"`
	Creator         string       `json:"creator"`
	Sold            string       `json:"sold"`
	Raised          string       `json:"raised"`
	IsOpen          bool         `json:"is_open"`
	Closed          bool         `json:"closed"`
	UnitCost        string       `json:"unit_cost,omitempty"`
	Progress        *float64     `json:"progress"`
	ProgressPercent string       `json:"progress_percent,omitempty"`
	Target          string       `json:"target"`
	TokenLimit      string       `json:"token_limit"`
	Fee             string       `json:"fee"`
}

type QuoteResponse struct {
	SoldAt      string `json:"sold_at"`
	UnitCost    string `json:"unit_cost"`
	AmountUnits uint64 `json:"amount_units"`
	TotalCost   string `json:"total_cost"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Class   string `json:"class"`
	Message string `json:"message"`
}

type AttemptResponse struct {
	ID          string         `json:"id"`
	TokenID     sale.TokenID   `json:"token_id"`
	Input       string         `json:"input"`
	AmountUnits uint64         `json:"amount_units,omitempty"`
	State       trade.State    `json:"state"`
	Quote       *QuoteResponse `json:"quote,omitempty"`
	TxHash      string         `json:"tx_hash,omitempty"`
	Account     string         `json:"account,omitempty"`
	ChainID     uint64         `json:"chain_id,omitempty"`
	Error       *ErrorInfo     `json:"error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NewSaleResponse converts a sale view for the wire.
func NewSaleResponse(v market.SaleView) SaleResponse {
	s := v.Snapshot
	out := SaleResponse{
		ID:              s.ID,
		Token:           s.Token.Hex(),
		Name:            s.Name,
		Creator:         s.Creator.Hex(),
		Sold:            sale.FormatUnits(s.Sold),
		Raised:          sale.FormatUnits(s.Raised),
		IsOpen:          s.IsOpen,
		Closed:          v.Closed,
		Progress:        v.Progress,
		ProgressPercent: v.ProgressPercent,
		Target:          sale.FormatUnits(v.Constants.Target),
		TokenLimit:      sale.FormatUnits(v.Constants.TokenLimit),
		Fee:             sale.FormatUnits(v.Constants.Fee),
	}
	if v.UnitCost != nil {
		out.UnitCost = sale.FormatUnits(v.UnitCost)
	}
	return out
}

func NewQuoteResponse(q sale.Quote) QuoteResponse {
	return QuoteResponse{
		SoldAt:      sale.FormatUnits(q.SoldAt),
		UnitCost:    sale.FormatUnits(q.UnitCost),
		AmountUnits: q.AmountUnits,
		TotalCost:   sale.FormatUnits(q.TotalCost),
	}
}

// NewAttemptResponse converts an attempt. Error is set only for failed attempts.
func NewAttemptResponse(a *trade.Attempt) AttemptResponse {
	out := AttemptResponse{
		ID:          a.ID,
		TokenID:     a.TokenID,
		Input:       a.Input,
		AmountUnits: a.AmountUnits,
		State:       a.State,
		ChainID:     a.ChainID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Quote != nil {
		q := NewQuoteResponse(*a.Quote)
		out.Quote = &q
	}
	if a.TxHash != nil {
		out.TxHash = a.TxHash.Hex()
	}
	if a.Account != (common.Address{}) {
		out.Account = a.Account.Hex()
	}
	if a.State == trade.StateFailed {
		out.Error = &ErrorInfo{
			Code:    a.ErrorCode,
			Class:   a.ErrorClass.String(),
			Message: a.ErrorMessage,
		}
	}
	return out
}
