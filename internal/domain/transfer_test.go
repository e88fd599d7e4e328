package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/domain"
)

func TestTransfer_TransitionTo(t *testing.T) {
	t.Run("full lifecycle", func(t *testing.T) {
		transfer := &domain.Transfer{Status: domain.TransferInitiated}

		for _, next := range []domain.TransferStatus{
			domain.TransferValidated,
			domain.TransferPostedDebit,
			domain.TransferPostedCredit,
			domain.TransferCompleted,
		} {
			if err := transfer.TransitionTo(next); err != nil {
				t.Fatalf("TransitionTo(%s) error = %v", next, err)
			}
		}
	})

	t.Run("merchant payment skips posted_credit", func(t *testing.T) {
		transfer := &domain.Transfer{Status: domain.TransferPostedDebit}

		if err := transfer.TransitionTo(domain.TransferCompleted); err != nil {
			t.Fatalf("TransitionTo(completed) error = %v", err)
		}
	})

	t.Run("failure reachable before completion", func(t *testing.T) {
		for _, from := range []domain.TransferStatus{
			domain.TransferInitiated,
			domain.TransferValidated,
			domain.TransferPostedDebit,
			domain.TransferPostedCredit,
		} {
			transfer := &domain.Transfer{Status: from}
			if err := transfer.TransitionTo(domain.TransferFailed); err != nil {
				t.Errorf("TransitionTo(failed) from %s error = %v", from, err)
			}
		}
	})

	t.Run("completed is terminal", func(t *testing.T) {
		transfer := &domain.Transfer{Status: domain.TransferCompleted}

		if err := transfer.TransitionTo(domain.TransferFailed); !errors.Is(err, domain.ErrInvalidTransition) {
			t.Errorf("TransitionTo(failed) error = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("cannot skip validation", func(t *testing.T) {
		transfer := &domain.Transfer{Status: domain.TransferInitiated}

		if err := transfer.TransitionTo(domain.TransferPostedDebit); !errors.Is(err, domain.ErrInvalidTransition) {
			t.Errorf("TransitionTo(posted_debit) error = %v, want ErrInvalidTransition", err)
		}
	})
}

func TestTransfer_Validate(t *testing.T) {
	from := "acc-1"

	tests := []struct {
		name     string
		transfer domain.Transfer
		wantErr  error
	}{
		{
			name: "valid client transfer",
			transfer: domain.Transfer{
				Kind:          domain.TransferClientToClient,
				FromAccountID: &from,
				Recipient:     domain.ClientRecipient("acc-2"),
				Amount:        decimal.NewFromInt(100),
			},
		},
		{
			name: "valid merchant payment",
			transfer: domain.Transfer{
				Kind:          domain.TransferPayment,
				FromAccountID: &from,
				Recipient:     domain.MerchantRecipient("mer-1"),
				Amount:        decimal.NewFromInt(100),
			},
		},
		{
			name: "non-positive amount",
			transfer: domain.Transfer{
				Kind:          domain.TransferClientToClient,
				FromAccountID: &from,
				Recipient:     domain.ClientRecipient("acc-2"),
				Amount:        decimal.Zero,
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "recipient with no side set",
			transfer: domain.Transfer{
				Kind:          domain.TransferClientToClient,
				FromAccountID: &from,
				Amount:        decimal.NewFromInt(100),
			},
			wantErr: domain.ErrInvalidRecipient,
		},
		{
			name: "transfer to own account",
			transfer: domain.Transfer{
				Kind:          domain.TransferClientToClient,
				FromAccountID: &from,
				Recipient:     domain.ClientRecipient("acc-1"),
				Amount:        decimal.NewFromInt(100),
			},
			wantErr: domain.ErrSelfTransferNotAllowed,
		},
		{
			name: "payment to own account",
			transfer: domain.Transfer{
				Kind:          domain.TransferPayment,
				FromAccountID: &from,
				Recipient:     domain.ClientRecipient("acc-1"),
				Amount:        decimal.NewFromInt(100),
			},
			wantErr: domain.ErrSelfPaymentNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transfer.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransferKind_References(t *testing.T) {
	tests := []struct {
		kind      domain.TransferKind
		debitRef  string
		creditRef string
	}{
		{domain.TransferClientToClient, "TRF-01ABC", "TRF-IN-01ABC"},
		{domain.TransferPayment, "PAY-01ABC", "PAY-IN-01ABC"},
		{domain.TransferDeposit, "DEP-01ABC", "TRF-IN-01ABC"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.DebitRef("01ABC"); got != tt.debitRef {
				t.Errorf("DebitRef() = %s, want %s", got, tt.debitRef)
			}
			if got := tt.kind.CreditRef("01ABC"); got != tt.creditRef {
				t.Errorf("CreditRef() = %s, want %s", got, tt.creditRef)
			}
		})
	}
}
