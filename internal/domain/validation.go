package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrAmountTooLarge  = errors.New("amount exceeds maximum allowed")
	ErrAmountPrecision = errors.New("amount has more than two fraction digits")
)

const (
	// MaxMovementAmount caps a single debit or credit.
	MaxMovementAmount = "100000000" // 100 million
	// MinMovementAmount is the smallest representable movement.
	MinMovementAmount = "0.01"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// ValidateCurrency accepts 3-letter uppercase ISO 4217 codes.
func ValidateCurrency(currency string) error {
	currency = strings.TrimSpace(currency)
	if len(currency) != 3 || currency != strings.ToUpper(currency) {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	for _, c := range currency {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
		}
	}
	return nil
}

// ValidateAmount checks positivity, the two-fraction-digit precision the
// ledger stores, and the movement cap.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.Exponent() < -2 {
		return ErrAmountPrecision
	}
	minAmount, _ := decimal.NewFromString(MinMovementAmount)
	if amount.LessThan(minAmount) {
		return ErrInvalidAmount
	}
	maxAmount, _ := decimal.NewFromString(MaxMovementAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum is %s", ErrAmountTooLarge, MaxMovementAmount)
	}
	return nil
}

// ValidatePhone validates the shape of a client phone number.
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(strings.TrimSpace(phone)) {
		return ErrInvalidPhone
	}
	return nil
}

// ValidatePagination normalizes page/per-page parameters.
func ValidatePagination(page, perPage int) (int, int) {
	const maxPerPage = 100
	const defaultPerPage = 10

	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
