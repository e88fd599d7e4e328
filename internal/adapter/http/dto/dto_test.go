package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbaye/kaalis/internal/domain"
)

func TestPayRequest_ToUseCaseInput(t *testing.T) {
	key := "key-1"
	req := PayRequest{
		Amount:         decimal.NewFromInt(500),
		RecipientPhone: "771234567",
	}

	input := req.ToUseCaseInput("acc-1", &key)

	assert.Equal(t, "acc-1", input.AccountID)
	assert.Equal(t, "771234567", input.RecipientPhone)
	assert.Empty(t, input.MerchantCode)
	assert.True(t, input.Amount.Equal(decimal.NewFromInt(500)))
	require.NotNil(t, input.IdempotencyKey)
	assert.Equal(t, "key-1", *input.IdempotencyKey)
}

func TestTransferRequest_ToUseCaseInput(t *testing.T) {
	req := TransferRequest{
		ToAccountID: "acc-2",
		Amount:      decimal.NewFromFloat(150.25),
	}

	input := req.ToUseCaseInput("acc-1", nil)

	assert.Equal(t, "acc-1", input.FromAccountID)
	assert.Equal(t, "acc-2", input.ToAccountID)
	assert.Nil(t, input.IdempotencyKey)
}

func TestEntryFromDomain(t *testing.T) {
	transferID := "trf-1"
	now := time.Now()
	counterparty := domain.MerchantRecipient("mer-1")

	entry := &domain.Entry{
		ID:              "ent-1",
		AccountID:       "acc-1",
		TransferID:      &transferID,
		Kind:            domain.EntryPaymentDebit,
		Amount:          decimal.NewFromInt(250),
		Currency:        "XOF",
		Status:          domain.EntryCompleted,
		Reference:       "PAY-01ABC",
		Counterparty:    &counterparty,
		PreviousBalance: decimal.NewFromInt(1000),
		CurrentBalance:  decimal.NewFromInt(750),
		AccountVersion:  3,
		CreatedAt:       now,
	}

	resp := EntryFromDomain(entry)

	assert.Equal(t, "ent-1", resp.ID)
	assert.Equal(t, "payment", resp.Kind)
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.TransferID)
	assert.Equal(t, "trf-1", *resp.TransferID)
	require.NotNil(t, resp.Counterparty)
	assert.Equal(t, "merchant", resp.Counterparty.Type)
	assert.Equal(t, "mer-1", resp.Counterparty.MerchantID)
	assert.True(t, resp.CurrentBalance.Equal(decimal.NewFromInt(750)))
}

func TestEntryFromDomain_NoCounterparty(t *testing.T) {
	resp := EntryFromDomain(&domain.Entry{
		ID:        "ent-2",
		AccountID: "acc-1",
		Kind:      domain.EntryDeposit,
		Amount:    decimal.NewFromInt(100),
		Currency:  "XOF",
		Status:    domain.EntryCompleted,
		Reference: "DEP-01ABC",
	})

	assert.Nil(t, resp.Counterparty)
	assert.Nil(t, resp.TransferID)
}

func TestAccountsFromDomain(t *testing.T) {
	accounts := []*domain.Account{
		{ID: "acc-1", Number: "CMPT-000001", Currency: "XOF", Balance: decimal.NewFromInt(100)},
		{ID: "acc-2", Number: "CMPT-000002", Currency: "XOF", Balance: decimal.Zero},
	}

	resp := AccountsFromDomain(accounts)

	require.Len(t, resp, 2)
	assert.Equal(t, "CMPT-000001", resp[0].Number)
	assert.Equal(t, "CMPT-000002", resp[1].Number)
}
