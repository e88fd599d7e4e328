package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mbaye/kaalis/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrTransferNotFound, http.StatusNotFound},
		{domain.ErrEntryNotFound, http.StatusNotFound},
		{domain.ErrRecipientNotFound, http.StatusNotFound},
		{domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{domain.ErrDuplicateReference, http.StatusConflict},
		{domain.ErrStorageConflict, http.StatusServiceUnavailable},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrSelfTransferNotAllowed, http.StatusBadRequest},
		{domain.ErrSelfPaymentNotAllowed, http.StatusBadRequest},
		{domain.ErrCurrencyMismatch, http.StatusBadRequest},
		{domain.ErrInvalidPhone, http.StatusBadRequest},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.want {
				t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestIdempotencyKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if key := idempotencyKey(req); key != nil {
		t.Errorf("expected nil key, got %q", *key)
	}

	req.Header.Set(IdempotencyKeyHeader, "req-1")
	key := idempotencyKey(req)
	if key == nil || *key != "req-1" {
		t.Errorf("expected req-1, got %v", key)
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&junk=x", nil)

	if got := parseIntQuery(req, "page", 1); got != 3 {
		t.Errorf("parseIntQuery(page) = %d, want 3", got)
	}
	if got := parseIntQuery(req, "missing", 7); got != 7 {
		t.Errorf("parseIntQuery(missing) = %d, want 7", got)
	}
	if got := parseIntQuery(req, "junk", 7); got != 7 {
		t.Errorf("parseIntQuery(junk) = %d, want 7", got)
	}
}
