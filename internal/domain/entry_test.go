package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/domain"
)

func TestEntryKind_IsDebit(t *testing.T) {
	tests := []struct {
		kind  domain.EntryKind
		debit bool
	}{
		{domain.EntryDeposit, false},
		{domain.EntryPaymentDebit, true},
		{domain.EntryPaymentCredit, false},
		{domain.EntryTransferDebit, true},
		{domain.EntryTransferCredit, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.IsDebit(); got != tt.debit {
				t.Errorf("IsDebit() = %v, want %v", got, tt.debit)
			}
		})
	}
}

func TestEntry_SignedAmount(t *testing.T) {
	amount := decimal.RequireFromString("250.75")

	debit := &domain.Entry{Kind: domain.EntryTransferDebit, Amount: amount}
	if !debit.SignedAmount().Equal(amount.Neg()) {
		t.Errorf("debit SignedAmount() = %s, want %s", debit.SignedAmount(), amount.Neg())
	}

	credit := &domain.Entry{Kind: domain.EntryDeposit, Amount: amount}
	if !credit.SignedAmount().Equal(amount) {
		t.Errorf("credit SignedAmount() = %s, want %s", credit.SignedAmount(), amount)
	}
}

func TestEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   domain.Entry
		wantErr error
	}{
		{
			name: "valid entry",
			entry: domain.Entry{
				Kind:      domain.EntryDeposit,
				Amount:    decimal.NewFromInt(100),
				Reference: "DEP-01ABC",
			},
		},
		{
			name: "unknown kind",
			entry: domain.Entry{
				Kind:      "withdrawal",
				Amount:    decimal.NewFromInt(100),
				Reference: "WDR-01ABC",
			},
			wantErr: domain.ErrInvalidEntryKind,
		},
		{
			name: "zero amount",
			entry: domain.Entry{
				Kind:      domain.EntryDeposit,
				Amount:    decimal.Zero,
				Reference: "DEP-01ABC",
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "negative amount",
			entry: domain.Entry{
				Kind:      domain.EntryTransferDebit,
				Amount:    decimal.NewFromInt(-5),
				Reference: "TRF-01ABC",
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "missing reference",
			entry: domain.Entry{
				Kind:   domain.EntryDeposit,
				Amount: decimal.NewFromInt(100),
			},
			wantErr: domain.ErrMissingReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
