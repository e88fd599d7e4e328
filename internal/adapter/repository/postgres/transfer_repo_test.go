package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/mbaye/kaalis/internal/domain"
)

func TestTransferRepositoryUpdateStatus(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectExec("UPDATE transfers SET status").
		WithArgs("trf-1", string(domain.TransferCompleted), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockPool.ExpectCommit()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	repo := &TransferRepository{}
	if err := repo.UpdateStatus(context.Background(), tx, "trf-1", domain.TransferCompleted, time.Now()); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestTransferRepositoryUpdateStatusDuplicateIdempotencyKey(t *testing.T) {
	// Two requests carrying the same idempotency key can both miss the
	// completed-transfer lookup; the loser hits the partial unique index
	// when completing and must surface ErrDuplicateReference, not a raw
	// SQLSTATE error.
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectExec("UPDATE transfers SET status").
		WithArgs("trf-2", string(domain.TransferCompleted), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "idx_transfers_idempotency_key",
		})
	mockPool.ExpectRollback()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	repo := &TransferRepository{}
	err = repo.UpdateStatus(context.Background(), tx, "trf-2", domain.TransferCompleted, time.Now())
	if !errors.Is(err, domain.ErrDuplicateReference) {
		t.Fatalf("UpdateStatus() error = %v, want ErrDuplicateReference", err)
	}

	if err := tx.Rollback(context.Background()); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	assertExpectations(t, mockPool)
}
