package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/domain"
)

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		currency string
		wantErr  bool
	}{
		{"XOF", false},
		{"EUR", false},
		{"USD", false},
		{"xof", true},
		{"XO", true},
		{"XOFA", true},
		{"X0F", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			err := domain.ValidateCurrency(tt.currency)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCurrency(%q) error = %v, wantErr %v", tt.currency, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{"valid integer", "100", nil},
		{"valid with cents", "100.25", nil},
		{"minimum", "0.01", nil},
		{"maximum", "100000000", nil},
		{"zero", "0", domain.ErrInvalidAmount},
		{"negative", "-10", domain.ErrInvalidAmount},
		{"sub-cent precision", "0.001", domain.ErrAmountPrecision},
		{"three fraction digits", "10.123", domain.ErrAmountPrecision},
		{"above cap", "100000000.01", domain.ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateAmount(decimal.RequireFromString(tt.amount))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAmount(%s) error = %v, want %v", tt.amount, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone   string
		wantErr bool
	}{
		{"+221771234567", false},
		{"771234567", false},
		{"  771234567 ", false},
		{"123456", true},
		{"+221 77 123 45 67", true},
		{"phone", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			err := domain.ValidatePhone(tt.phone)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePhone(%q) error = %v, wantErr %v", tt.phone, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 25, 1, 25},
		{"per page capped", 2, 500, 2, 100},
		{"passthrough", 4, 50, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := domain.ValidatePagination(tt.page, tt.perPage)
			if page != tt.wantPage || perPage != tt.wantPerPage {
				t.Errorf("ValidatePagination(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.perPage, page, perPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestRecipient_Validate(t *testing.T) {
	tests := []struct {
		name      string
		recipient domain.Recipient
		wantErr   bool
	}{
		{"client", domain.ClientRecipient("acc-1"), false},
		{"merchant", domain.MerchantRecipient("mer-1"), false},
		{"client without account", domain.Recipient{Type: domain.RecipientClient}, true},
		{"merchant without id", domain.Recipient{Type: domain.RecipientMerchant}, true},
		{"both sides set", domain.Recipient{Type: domain.RecipientClient, AccountID: "a", MerchantID: "m"}, true},
		{"no type", domain.Recipient{AccountID: "acc-1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipient.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
