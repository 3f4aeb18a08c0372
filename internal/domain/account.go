package domain

import "github.com/shopspring/decimal"

// Account is a single client's balance state. Available never goes negative;
// the held balance is derived from disputed deposits at snapshot time rather
// than tracked as a counter here, so it cannot drift from the true set of
// open disputes.
type Account struct {
	Client    ClientID
	Available decimal.Decimal
	Frozen    bool
}

// NewAccount returns an empty, unfrozen account for client.
func NewAccount(client ClientID) *Account {
	return &Account{Client: client, Available: decimal.Zero}
}

// Deposit credits the available balance.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Available = a.Available.Add(amount)
}

// Withdraw debits the available balance. The full amount must be covered;
// there are no partial withdrawals.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if a.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.Available = a.Available.Sub(amount)
	return nil
}

// Hold moves amount out of the available balance for an open dispute. The
// caller must have checked that the available balance covers it.
func (a *Account) Hold(amount decimal.Decimal) {
	a.Available = a.Available.Sub(amount)
}

// Release returns a previously held amount to the available balance.
func (a *Account) Release(amount decimal.Decimal) {
	a.Available = a.Available.Add(amount)
}

// Freeze permanently locks the account. A frozen account accepts no further
// state-changing record of any kind.
func (a *Account) Freeze() {
	a.Frozen = true
}
