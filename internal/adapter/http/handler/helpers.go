package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mbaye/kaalis/internal/adapter/http/dto"
	"github.com/mbaye/kaalis/internal/domain"
)

// IdempotencyKeyHeader is the header callers set to make a movement retryable.
const IdempotencyKeyHeader = "Idempotency-Key"

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransferNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrRecipientNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDuplicateReference):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStorageConflict):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrAmountPrecision),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrInvalidRecipient),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrSelfTransferNotAllowed),
		errors.Is(err, domain.ErrSelfPaymentNotAllowed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// idempotencyKey reads the Idempotency-Key header, nil when absent.
func idempotencyKey(r *http.Request) *string {
	key := r.Header.Get(IdempotencyKeyHeader)
	if key == "" {
		return nil
	}
	return &key
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
