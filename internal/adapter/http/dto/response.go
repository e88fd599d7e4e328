package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/domain"
	"github.com/mbaye/kaalis/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	ClientID  string          `json:"client_id"`
	Number    string          `json:"account_number"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		ClientID:  a.ClientID,
		Number:    a.Number,
		Currency:  a.Currency,
		Balance:   a.Balance,
		Version:   a.Version,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// ReceiptResponse is returned after a successful money movement.
type ReceiptResponse struct {
	TransferID string          `json:"transfer_id"`
	Reference  string          `json:"reference"`
	Balance    decimal.Decimal `json:"balance"`
	Currency   string          `json:"currency"`
}

// ReceiptFromDomain converts a domain receipt to response.
func ReceiptFromDomain(r *domain.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		TransferID: r.TransferID,
		Reference:  r.Reference,
		Balance:    r.Balance,
		Currency:   r.Currency,
	}
}

// RecipientResponse identifies the counterparty of an entry or transfer.
type RecipientResponse struct {
	Type       string `json:"type"`
	AccountID  string `json:"account_id,omitempty"`
	MerchantID string `json:"merchant_id,omitempty"`
}

func recipientFromDomain(r *domain.Recipient) *RecipientResponse {
	if r == nil {
		return nil
	}
	return &RecipientResponse{
		Type:       string(r.Type),
		AccountID:  r.AccountID,
		MerchantID: r.MerchantID,
	}
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID              string             `json:"id"`
	AccountID       string             `json:"account_id"`
	TransferID      *string            `json:"transfer_id,omitempty"`
	Kind            string             `json:"kind"`
	Amount          decimal.Decimal    `json:"amount"`
	Currency        string             `json:"currency"`
	Status          string             `json:"status"`
	Reference       string             `json:"reference"`
	Counterparty    *RecipientResponse `json:"counterparty,omitempty"`
	PreviousBalance decimal.Decimal    `json:"previous_balance"`
	CurrentBalance  decimal.Decimal    `json:"current_balance"`
	AccountVersion  int64              `json:"account_version"`
	CreatedAt       time.Time          `json:"created_at"`
}

// EntryFromDomain converts domain entry to response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:              e.ID,
		AccountID:       e.AccountID,
		TransferID:      e.TransferID,
		Kind:            string(e.Kind),
		Amount:          e.Amount,
		Currency:        e.Currency,
		Status:          string(e.Status),
		Reference:       e.Reference,
		Counterparty:    recipientFromDomain(e.Counterparty),
		PreviousBalance: e.PreviousBalance,
		CurrentBalance:  e.CurrentBalance,
		AccountVersion:  e.AccountVersion,
		CreatedAt:       e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// EntriesPageResponse is one page of an account's history, newest first.
type EntriesPageResponse struct {
	Entries    []*EntryResponse    `json:"entries"`
	Pagination *usecase.Pagination `json:"pagination"`
}

// TransferResponse represents a transfer in API responses.
type TransferResponse struct {
	ID              string             `json:"id"`
	Kind            string             `json:"kind"`
	FromAccountID   *string            `json:"from_account_id,omitempty"`
	Recipient       *RecipientResponse `json:"recipient"`
	Amount          decimal.Decimal    `json:"amount"`
	Currency        string             `json:"currency"`
	Status          string             `json:"status"`
	DebitReference  string             `json:"debit_reference"`
	CreditReference *string            `json:"credit_reference,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// TransferFromDomain converts domain transfer to response.
func TransferFromDomain(t *domain.Transfer) *TransferResponse {
	return &TransferResponse{
		ID:              t.ID,
		Kind:            string(t.Kind),
		FromAccountID:   t.FromAccountID,
		Recipient:       recipientFromDomain(&t.Recipient),
		Amount:          t.Amount,
		Currency:        t.Currency,
		Status:          string(t.Status),
		DebitReference:  t.DebitReference,
		CreditReference: t.CreditReference,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
