package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/domain"
)

func TestAccount_ValidateDebit(t *testing.T) {
	tests := []struct {
		name    string
		balance decimal.Decimal
		amount  decimal.Decimal
		wantErr error
	}{
		{
			name:    "sufficient funds",
			balance: decimal.NewFromInt(500),
			amount:  decimal.NewFromInt(100),
		},
		{
			name:    "exact balance",
			balance: decimal.NewFromInt(100),
			amount:  decimal.NewFromInt(100),
		},
		{
			name:    "insufficient funds",
			balance: decimal.NewFromInt(100),
			amount:  decimal.NewFromInt(101),
			wantErr: domain.ErrInsufficientFunds,
		},
		{
			name:    "insufficient by one cent",
			balance: decimal.RequireFromString("99.99"),
			amount:  decimal.NewFromInt(100),
			wantErr: domain.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &domain.Account{Balance: tt.balance}

			err := account.ValidateDebit(tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDebit() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAccount_ApplyDebitCredit(t *testing.T) {
	account := &domain.Account{Balance: decimal.NewFromInt(500)}

	debited := account.ApplyDebit(decimal.RequireFromString("100.50"))
	if !debited.Equal(decimal.RequireFromString("399.50")) {
		t.Errorf("ApplyDebit() = %s, want 399.50", debited)
	}

	credited := account.ApplyCredit(decimal.RequireFromString("0.01"))
	if !credited.Equal(decimal.RequireFromString("500.01")) {
		t.Errorf("ApplyCredit() = %s, want 500.01", credited)
	}

	// Applying never mutates the account itself.
	if !account.Balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("balance mutated to %s", account.Balance)
	}
}
