package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/usecase"
)

// OpenAccountRequest represents a request to open an account.
type OpenAccountRequest struct {
	ClientID string `json:"client_id"`
	Phone    string `json:"phone"`
	Currency string `json:"currency"`
}

// ToUseCaseInput converts to use case input.
func (r *OpenAccountRequest) ToUseCaseInput() usecase.OpenAccountInput {
	return usecase.OpenAccountInput{
		ClientID: r.ClientID,
		Phone:    r.Phone,
		Currency: r.Currency,
	}
}

// DepositRequest represents a request to deposit money into an account.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *DepositRequest) ToUseCaseInput(accountID string) usecase.DepositInput {
	return usecase.DepositInput{
		AccountID: accountID,
		Amount:    r.Amount,
	}
}

// PayRequest represents a payment request. Exactly one of recipient_phone and
// merchant_code must be set.
type PayRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	RecipientPhone string          `json:"recipient_phone,omitempty"`
	MerchantCode   string          `json:"merchant_code,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *PayRequest) ToUseCaseInput(accountID string, idempotencyKey *string) usecase.PayInput {
	return usecase.PayInput{
		AccountID:      accountID,
		Amount:         r.Amount,
		RecipientPhone: r.RecipientPhone,
		MerchantCode:   r.MerchantCode,
		IdempotencyKey: idempotencyKey,
	}
}

// TransferRequest represents a client-to-client transfer request.
type TransferRequest struct {
	ToAccountID string          `json:"to_account_id"`
	Amount      decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput(fromAccountID string, idempotencyKey *string) usecase.TransferInput {
	return usecase.TransferInput{
		FromAccountID:  fromAccountID,
		ToAccountID:    r.ToAccountID,
		Amount:         r.Amount,
		IdempotencyKey: idempotencyKey,
	}
}
