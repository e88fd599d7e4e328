package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind identifies the balance-affecting event an entry records.
// The kind determines the sign applied to the balance: debit kinds
// subtract, credit kinds add. Amounts are always stored positive.
type EntryKind string

const (
	EntryDeposit        EntryKind = "deposit"
	EntryPaymentDebit   EntryKind = "payment"
	EntryPaymentCredit  EntryKind = "incoming_payment"
	EntryTransferDebit  EntryKind = "transfer"
	EntryTransferCredit EntryKind = "incoming_transfer"
)

// IsDebit reports whether the kind subtracts from the balance.
func (k EntryKind) IsDebit() bool {
	return k == EntryPaymentDebit || k == EntryTransferDebit
}

// Valid reports whether k is a known entry kind.
func (k EntryKind) Valid() bool {
	switch k {
	case EntryDeposit, EntryPaymentDebit, EntryPaymentCredit, EntryTransferDebit, EntryTransferCredit:
		return true
	}
	return false
}

// EntryStatus is the settlement status of an entry.
type EntryStatus string

const (
	EntryPending   EntryStatus = "pending"
	EntryCompleted EntryStatus = "completed"
	EntryCancelled EntryStatus = "cancelled"
)

// Entry is an immutable record of one balance-affecting event against one
// account. Once completed, amount, kind and account never change; corrections
// are posted as new reversing entries.
type Entry struct {
	ID              string
	AccountID       string
	TransferID      *string
	Kind            EntryKind
	Amount          decimal.Decimal
	Currency        string
	Status          EntryStatus
	Reference       string
	Counterparty    *Recipient
	PreviousBalance decimal.Decimal
	CurrentBalance  decimal.Decimal
	AccountVersion  int64
	CreatedAt       time.Time
}

// SignedAmount returns the amount with the sign the kind applies to the balance.
func (e *Entry) SignedAmount() decimal.Decimal {
	if e.Kind.IsDebit() {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Validate checks entry invariants before posting.
func (e *Entry) Validate() error {
	if !e.Kind.Valid() {
		return ErrInvalidEntryKind
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if e.Reference == "" {
		return ErrMissingReference
	}
	return nil
}
