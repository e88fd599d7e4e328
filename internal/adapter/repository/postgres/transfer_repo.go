package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbaye/kaalis/internal/domain"
	"github.com/mbaye/kaalis/internal/infrastructure/postgres/generated"
	"github.com/mbaye/kaalis/internal/usecase"
)

// TransferRepository implements usecase.TransferRepository.
type TransferRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransferRepository creates a new TransferRepository.
func NewTransferRepository(pool *pgxpool.Pool) *TransferRepository {
	return &TransferRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new transfer inside the caller's transaction.
func (r *TransferRepository) Create(ctx context.Context, tx usecase.Transaction, transfer *domain.Transfer) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	recipientID := transfer.Recipient.AccountID
	if transfer.Recipient.Type == domain.RecipientMerchant {
		recipientID = transfer.Recipient.MerchantID
	}

	_, err := queries.CreateTransfer(ctx, generated.CreateTransferParams{
		ID:              transfer.ID,
		Kind:            string(transfer.Kind),
		FromAccountID:   transfer.FromAccountID,
		RecipientType:   string(transfer.Recipient.Type),
		RecipientID:     recipientID,
		Amount:          decimalToNumeric(transfer.Amount),
		Currency:        transfer.Currency,
		Status:          string(transfer.Status),
		DebitReference:  transfer.DebitReference,
		CreditReference: transfer.CreditReference,
		IdempotencyKey:  transfer.IdempotencyKey,
		CreatedAt:       timeToPgTimestamptz(transfer.CreatedAt),
		UpdatedAt:       timeToPgTimestamptz(transfer.UpdatedAt),
	})

	return mapPgError(err)
}

// UpdateStatus moves a transfer to a new status inside the caller's
// transaction. Completing a transfer can violate the partial unique index on
// idempotency_key when a concurrent request with the same key won the race,
// so the error goes through mapPgError like Create's does.
func (r *TransferRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.TransferStatus, updatedAt time.Time) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	return mapPgError(queries.UpdateTransferStatus(ctx, generated.UpdateTransferStatusParams{
		ID:        id,
		Status:    string(status),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	}))
}

// GetByID retrieves a transfer by ID.
func (r *TransferRepository) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	row, err := r.queries.GetTransferByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransferNotFound
		}

		return nil, err
	}

	return rowToTransfer(row), nil
}

// GetByIdempotencyKey retrieves the completed transfer posted for a key.
func (r *TransferRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Transfer, error) {
	row, err := r.queries.GetTransferByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransferNotFound
		}

		return nil, err
	}

	return rowToTransfer(row), nil
}

func rowToTransfer(row generated.Transfer) *domain.Transfer {
	recipient := domain.Recipient{Type: domain.RecipientType(row.RecipientType)}
	if recipient.Type == domain.RecipientMerchant {
		recipient.MerchantID = row.RecipientID
	} else {
		recipient.AccountID = row.RecipientID
	}

	return &domain.Transfer{
		ID:              row.ID,
		Kind:            domain.TransferKind(row.Kind),
		FromAccountID:   row.FromAccountID,
		Recipient:       recipient,
		Amount:          numericToDecimal(row.Amount),
		Currency:        row.Currency,
		Status:          domain.TransferStatus(row.Status),
		DebitReference:  row.DebitReference,
		CreditReference: row.CreditReference,
		IdempotencyKey:  row.IdempotencyKey,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
