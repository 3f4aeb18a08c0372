package domain

import "github.com/shopspring/decimal"

// ClientID identifies a client. Accounts are created implicitly on the first
// record that references a client id.
type ClientID uint16

// TxID identifies a deposit or withdrawal record. Dispute, resolve and
// chargeback records reference a prior TxID instead of carrying their own.
type TxID uint32

// Kind is the type of a transaction record.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// Transaction is a single record from the input stream. Amount is only
// meaningful for deposits and withdrawals.
type Transaction struct {
	Kind   Kind
	Client ClientID
	Tx     TxID
	Amount decimal.NullDecimal
}

// Validate checks the rules that do not depend on ledger state. Deposits and
// withdrawals must carry a positive amount; the dispute lifecycle kinds
// ignore the amount entirely.
func (t Transaction) Validate() error {
	switch t.Kind {
	case KindDeposit, KindWithdrawal:
		if !t.Amount.Valid {
			return ErrMissingAmount
		}
		if t.Amount.Decimal.LessThanOrEqual(decimal.Zero) {
			return ErrInvalidAmount
		}
	case KindDispute, KindResolve, KindChargeback:
	default:
		return ErrUnknownKind
	}
	return nil
}
