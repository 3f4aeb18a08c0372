package domain

import "errors"

// Rejection reasons for individual records. A rejection never aborts a run:
// the ledger discards the record without mutating state and moves on.
var (
	ErrUnknownKind       = errors.New("unknown transaction kind")
	ErrMissingAmount     = errors.New("amount is required")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrAccountFrozen     = errors.New("account is frozen")
	ErrInsufficientFunds = errors.New("insufficient available funds")
	ErrDuplicateTx       = errors.New("transaction id already recorded")
	ErrTxNotFound        = errors.New("referenced transaction not found")
	ErrClientMismatch    = errors.New("client does not own referenced transaction")
	ErrNotDisputable     = errors.New("deposit is not disputable")
	ErrNotDisputed       = errors.New("deposit is not under dispute")
)
