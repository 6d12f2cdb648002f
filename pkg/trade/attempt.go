// Package trade drives purchase attempts from user input to a confirmed or failed
// transaction.
package trade

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/adiboy-23/fun-pump/pkg/sale"
)

// ErrAttemptNotFound is returned when an attempt ID is unknown.
var ErrAttemptNotFound = errors.New("attempt not found")

// State is the position of an attempt in the purchase flow.
type State string

const (
	StateIdle                 State = "idle"
	StateValidating           State = "validating"
	StateQuoting              State = "quoting"
	StateAwaitingSignature    State = "awaiting_signature"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateSucceeded            State = "succeeded"
	StateFailed               State = "failed"
)

// Terminal reports whether no further transitions can happen.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// InFlight reports whether the attempt holds its token's purchase lock.
func (s State) InFlight() bool {
	switch s {
	case StateValidating, StateQuoting, StateAwaitingSignature, StateAwaitingConfirmation:
		return true
	}
	return false
}

// Attempt is one purchase flow. Values handed out by the controller are copies.
type Attempt struct {
	ID          string
	TokenID     sale.TokenID
	Input       string
	AmountUnits uint64
	State       State

	// Quote is the price the transaction was sent with, set from Quoting on.
	Quote   *sale.Quote
	TxHash  *common.Hash
	Account common.Address
	ChainID uint64

	ErrorCode    string
	ErrorClass   sale.Class
	ErrorMessage string

	CreatedAt time.Time
	UpdatedAt time.Time

	err error
}

// Err returns the failure of a Failed attempt.
func (a *Attempt) Err() error {
	if a.err != nil {
		return a.err
	}
	if a.ErrorMessage != "" {
		return errors.New(a.ErrorMessage)
	}
	return nil
}

func (a *Attempt) clone() *Attempt {
	c := *a
	if a.Quote != nil {
		q := *a.Quote
		c.Quote = &q
	}
	if a.TxHash != nil {
		h := *a.TxHash
		c.TxHash = &h
	}
	return &c
}

func (a *Attempt) fail(err error, now time.Time) {
	a.State = StateFailed
	a.err = err
	a.ErrorCode = sale.CodeOf(err)
	a.ErrorClass = sale.ClassOf(err)
	a.ErrorMessage = err.Error()
	a.UpdatedAt = now
}

// outcome is the label an attempt is counted under.
func (a *Attempt) outcome() string {
	if a.State == StateSucceeded {
		return string(StateSucceeded)
	}
	if a.ErrorCode != "" {
		return a.ErrorCode
	}
	return "Unknown"
}
