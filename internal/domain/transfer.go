package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferKind distinguishes the three movement shapes the engine posts.
type TransferKind string

const (
	TransferClientToClient TransferKind = "transfer"
	TransferPayment        TransferKind = "payment"
	TransferDeposit        TransferKind = "deposit"
)

// TransferStatus is a state in the transfer lifecycle. Completed is terminal.
type TransferStatus string

const (
	TransferInitiated    TransferStatus = "initiated"
	TransferValidated    TransferStatus = "validated"
	TransferPostedDebit  TransferStatus = "posted_debit"
	TransferPostedCredit TransferStatus = "posted_credit"
	TransferCompleted    TransferStatus = "completed"
	TransferFailed       TransferStatus = "failed"
)

var transferTransitions = map[TransferStatus][]TransferStatus{
	TransferInitiated:    {TransferValidated, TransferFailed},
	TransferValidated:    {TransferPostedDebit, TransferFailed},
	TransferPostedDebit:  {TransferPostedCredit, TransferCompleted, TransferFailed},
	TransferPostedCredit: {TransferCompleted, TransferFailed},
}

// Transfer is one money movement: a client-to-client transfer, a payment to a
// client or merchant, or a deposit. It owns the references of the entry pair
// it produced, so the pair can be reconciled from the transfer alone.
type Transfer struct {
	ID              string
	Kind            TransferKind
	FromAccountID   *string
	Recipient       Recipient
	Amount          decimal.Decimal
	Currency        string
	Status          TransferStatus
	DebitReference  string
	CreditReference *string
	IdempotencyKey  *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TransitionTo moves the transfer to next, enforcing the legal order.
func (t *Transfer) TransitionTo(next TransferStatus) error {
	for _, allowed := range transferTransitions[t.Status] {
		if next == allowed {
			t.Status = next
			return nil
		}
	}
	return ErrInvalidTransition
}

// Validate checks the movement before any storage mutation.
func (t *Transfer) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if err := t.Recipient.Validate(); err != nil {
		return err
	}
	if t.FromAccountID != nil && t.Recipient.Type == RecipientClient && *t.FromAccountID == t.Recipient.AccountID {
		if t.Kind == TransferPayment {
			return ErrSelfPaymentNotAllowed
		}
		return ErrSelfTransferNotAllowed
	}
	return nil
}

// Reference prefixes, matching the references merchants and support staff see
// on statements.
const (
	RefDeposit        = "DEP-"
	RefPaymentDebit   = "PAY-"
	RefPaymentCredit  = "PAY-IN-"
	RefTransferDebit  = "TRF-"
	RefTransferCredit = "TRF-IN-"
)

// DebitRef derives the debit-side reference from a transfer identifier.
func (k TransferKind) DebitRef(id string) string {
	switch k {
	case TransferPayment:
		return RefPaymentDebit + id
	case TransferDeposit:
		return RefDeposit + id
	default:
		return RefTransferDebit + id
	}
}

// CreditRef derives the credit-side reference from the same identifier, so a
// completed pair is reconcilable by suffix.
func (k TransferKind) CreditRef(id string) string {
	if k == TransferPayment {
		return RefPaymentCredit + id
	}
	return RefTransferCredit + id
}

// Receipt is returned to the caller after a successful movement.
type Receipt struct {
	TransferID string
	Reference  string
	Balance    decimal.Decimal
	Currency   string
}
