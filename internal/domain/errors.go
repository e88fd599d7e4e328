package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Entry errors
	ErrEntryNotFound      = errors.New("entry not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidEntryKind   = errors.New("unknown entry kind")
	ErrMissingReference   = errors.New("entry reference is required")
	ErrDuplicateReference = errors.New("reference already used")

	// Movement errors
	ErrSelfTransferNotAllowed = errors.New("cannot transfer to own account")
	ErrSelfPaymentNotAllowed  = errors.New("cannot pay own account")
	ErrRecipientNotFound      = errors.New("recipient not found")
	ErrInvalidRecipient       = errors.New("exactly one recipient must be set")
	ErrCurrencyMismatch       = errors.New("cannot move money between different currencies")
	ErrTransferNotFound       = errors.New("transfer not found")
	ErrInvalidTransition      = errors.New("illegal transfer status transition")

	// Storage errors
	ErrStorageConflict = errors.New("storage conflict, retry later")
)
