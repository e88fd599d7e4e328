package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mbaye/kaalis/internal/usecase/mocks"
)

func TestIdempotencyMiddleware_ReplaysStoredResponse(t *testing.T) {
	store := mocks.NewMockIdempotencyStore()
	mw := NewIdempotencyMiddleware(store, time.Minute)

	var calls int32
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"transfer_id":"trf-1"}`))
	}))

	first := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/transfer", strings.NewReader("{}"))
	first.Header.Set(IdempotencyKeyHeader, "key-1")
	firstRec := httptest.NewRecorder()
	handler.ServeHTTP(firstRec, first)

	if firstRec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", firstRec.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/transfer", strings.NewReader("{}"))
	second.Header.Set(IdempotencyKeyHeader, "key-1")
	secondRec := httptest.NewRecorder()
	handler.ServeHTTP(secondRec, second)

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("handler called %d times, want 1", got)
	}
	if secondRec.Header().Get("X-Idempotency-Replay") != "true" {
		t.Error("expected replay header on second response")
	}
	if secondRec.Body.String() != firstRec.Body.String() {
		t.Errorf("replayed body %q differs from original %q", secondRec.Body.String(), firstRec.Body.String())
	}
}

func TestIdempotencyMiddleware_FailuresStayRetryable(t *testing.T) {
	store := mocks.NewMockIdempotencyStore()
	mw := NewIdempotencyMiddleware(store, time.Minute)

	var calls int32
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"insufficient funds"}`))
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/transfer", strings.NewReader("{}"))
		req.Header.Set(IdempotencyKeyHeader, "key-2")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("attempt %d: expected 422, got %d", i, rec.Code)
		}
	}

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("handler called %d times, want 2", got)
	}
}

func TestIdempotencyMiddleware_SkipsReadsAndKeylessRequests(t *testing.T) {
	store := mocks.NewMockIdempotencyStore()
	mw := NewIdempotencyMiddleware(store, time.Minute)

	var calls int32
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte("ok"))
	}))

	getReq := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/balance", nil)
	getReq.Header.Set(IdempotencyKeyHeader, "key-3")
	handler.ServeHTTP(httptest.NewRecorder(), getReq)
	handler.ServeHTTP(httptest.NewRecorder(), getReq)

	postNoKey := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/transfer", strings.NewReader("{}"))
	handler.ServeHTTP(httptest.NewRecorder(), postNoKey)
	handler.ServeHTTP(httptest.NewRecorder(), postNoKey)

	if got := atomic.LoadInt32(&calls); got != 4 {
		t.Fatalf("handler called %d times, want 4", got)
	}
}
