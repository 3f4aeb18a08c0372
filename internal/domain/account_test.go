package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccount_Deposit(t *testing.T) {
	acc := NewAccount(1)
	acc.Deposit(decimal.RequireFromString("100.5"))
	acc.Deposit(decimal.RequireFromString("0.0001"))

	want := decimal.RequireFromString("100.5001")
	if !acc.Available.Equal(want) {
		t.Fatalf("available = %s, want %s", acc.Available, want)
	}
}

func TestAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name          string
		available     string
		amount        string
		wantErr       error
		wantAvailable string
	}{
		{
			name:          "covered withdrawal",
			available:     "100",
			amount:        "30",
			wantAvailable: "70",
		},
		{
			name:          "withdraw exact balance",
			available:     "100",
			amount:        "100",
			wantAvailable: "0",
		},
		{
			name:          "insufficient funds",
			available:     "100",
			amount:        "100.0001",
			wantErr:       ErrInsufficientFunds,
			wantAvailable: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewAccount(1)
			acc.Deposit(decimal.RequireFromString(tt.available))

			err := acc.Withdraw(decimal.RequireFromString(tt.amount))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Withdraw() = %v, want %v", err, tt.wantErr)
			}

			want := decimal.RequireFromString(tt.wantAvailable)
			if !acc.Available.Equal(want) {
				t.Fatalf("available = %s, want %s", acc.Available, want)
			}
		})
	}
}

func TestAccount_HoldAndRelease(t *testing.T) {
	acc := NewAccount(1)
	acc.Deposit(decimal.NewFromInt(100))

	acc.Hold(decimal.NewFromInt(40))
	if !acc.Available.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("available after hold = %s, want 60", acc.Available)
	}

	acc.Release(decimal.NewFromInt(40))
	if !acc.Available.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("available after release = %s, want 100", acc.Available)
	}
}

func TestAccount_Freeze(t *testing.T) {
	acc := NewAccount(1)
	if acc.Frozen {
		t.Fatal("new account should not be frozen")
	}

	acc.Freeze()
	if !acc.Frozen {
		t.Fatal("expected account to be frozen")
	}
}
