package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assigned to newly opened accounts.
const DefaultCurrency = "XOF"

// Account is a client's monetary holding. The balance column is a cache of
// the signed sum of completed entries; the entry log is the source of truth.
type Account struct {
	ID        string
	ClientID  string
	Number    string
	Currency  string
	Balance   decimal.Decimal
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateDebit checks that debiting amount does not push the balance below zero.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if a.Balance.Sub(amount).IsNegative() {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns the balance after a debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}
