package sale

import "errors"

// Class groups failures by how the presentation layer should surface them.
type Class int

const (
	// ClassUnknown is returned for errors outside the sale taxonomy.
	ClassUnknown Class = iota
	// ClassInput errors are recovered locally and never reach the network.
	ClassInput
	// ClassConnectivity errors carry a remediation action (switch network, install wallet).
	ClassConnectivity
	// ClassAuthorization errors are a benign "not connected / cancelled" state.
	ClassAuthorization
	// ClassChain errors are surfaced verbatim and logged.
	ClassChain
)

func (c Class) String() string {
	switch c {
	case ClassInput:
		return "input"
	case ClassConnectivity:
		return "connectivity"
	case ClassAuthorization:
		return "authorization"
	case ClassChain:
		return "chain"
	default:
		return "unknown"
	}
}

// ParseClass is the inverse of Class.String. Unrecognized names give ClassUnknown.
func ParseClass(s string) Class {
	for c := ClassInput; c <= ClassChain; c++ {
		if c.String() == s {
			return c
		}
	}
	return ClassUnknown
}

// Error is a classified sentinel error.
type Error struct {
	Code  string
	Msg   string
	Class Class
}

func (e *Error) Error() string { return e.Msg }

func newError(code, msg string, class Class) *Error {
	return &Error{Code: code, Msg: msg, Class: class}
}

// Input errors
var (
	ErrInvalidAmount     = newError("InvalidAmount", "amount must be a whole number between 1 and 10000", ClassInput)
	ErrAttemptInProgress = newError("AttemptInProgress", "a purchase for this token is already in progress", ClassInput)
	ErrSaleClosed        = newError("SaleClosed", "target reached, sale is closed", ClassInput)
)

// Connectivity errors
var (
	ErrNoWalletFound             = newError("NoWalletFound", "no wallet provider found", ClassConnectivity)
	ErrUnsupportedChain          = newError("UnsupportedChain", "no sale contract registered for the current chain", ClassConnectivity)
	ErrNetworkSwitchRejected     = newError("NetworkSwitchRejected", "network switch rejected", ClassConnectivity)
	ErrNetworkRegistrationFailed = newError("NetworkRegistrationFailed", "failed to register network with wallet", ClassConnectivity)
	ErrConnectInProgress         = newError("ConnectInProgress", "a wallet connect or network switch request is already pending", ClassConnectivity)
)

// Authorization errors
var (
	ErrPermissionDenied  = newError("PermissionDenied", "wallet permission denied", ClassAuthorization)
	ErrSignatureRejected = newError("SignatureRejected", "transaction signature rejected", ClassAuthorization)
)

// Chain errors
var (
	ErrChainRead           = newError("ChainReadError", "chain read failed", ClassChain)
	ErrChainWrite          = newError("ChainWriteError", "chain write failed", ClassChain)
	ErrInsufficientFunds   = newError("InsufficientFunds", "insufficient funds", ClassChain)
	ErrTransactionReverted = newError("TransactionReverted", "transaction reverted", ClassChain)
	ErrTransactionTimedOut = newError("TransactionTimedOut", "timed out waiting for transaction confirmation", ClassChain)
)

// ErrProgressUndefined is returned when the sale target is zero.
var ErrProgressUndefined = newError("ProgressUndefined", "progress is undefined for a zero target", ClassInput)

// ClassOf returns the class of the first sale error found in err's chain.
func ClassOf(err error) Class {
	var se *Error
	if errors.As(err, &se) {
		return se.Class
	}
	return ClassUnknown
}

// CodeOf returns the code of the first sale error found in err's chain, or "" if none.
func CodeOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
