package domain

import "github.com/shopspring/decimal"

// DisputeState tracks where a stored deposit is in its dispute lifecycle.
// Valid transitions: None -> Disputed -> {Resolved | ChargedBack}.
type DisputeState string

const (
	DisputeNone        DisputeState = "none"
	DisputeOpen        DisputeState = "disputed"
	DisputeResolved    DisputeState = "resolved"
	DisputeChargedBack DisputeState = "charged_back"
)

// StoredDeposit is a retained, accepted deposit. Only deposits are retained;
// withdrawals are never stored and can never be disputed.
type StoredDeposit struct {
	Client ClientID
	Tx     TxID
	Amount decimal.Decimal
	State  DisputeState
}

// Dispute opens a dispute against the deposit.
func (d *StoredDeposit) Dispute() error {
	if d.State != DisputeNone {
		return ErrNotDisputable
	}
	d.State = DisputeOpen
	return nil
}

// Resolve closes an open dispute in the client's favor.
func (d *StoredDeposit) Resolve() error {
	if d.State != DisputeOpen {
		return ErrNotDisputed
	}
	d.State = DisputeResolved
	return nil
}

// Chargeback closes an open dispute by reversing the deposit.
func (d *StoredDeposit) Chargeback() error {
	if d.State != DisputeOpen {
		return ErrNotDisputed
	}
	d.State = DisputeChargedBack
	return nil
}
