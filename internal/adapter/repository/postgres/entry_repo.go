package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/domain"
	"github.com/mbaye/kaalis/internal/infrastructure/postgres/generated"
	"github.com/mbaye/kaalis/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends an entry inside the caller's transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	var counterpartyType, counterpartyID *string
	if entry.Counterparty != nil {
		t := string(entry.Counterparty.Type)
		counterpartyType = &t

		id := entry.Counterparty.AccountID
		if entry.Counterparty.Type == domain.RecipientMerchant {
			id = entry.Counterparty.MerchantID
		}
		counterpartyID = &id
	}

	_, err := queries.CreateEntry(ctx, generated.CreateEntryParams{
		ID:               entry.ID,
		AccountID:        entry.AccountID,
		TransferID:       entry.TransferID,
		Kind:             string(entry.Kind),
		Amount:           decimalToNumeric(entry.Amount),
		Currency:         entry.Currency,
		Status:           string(entry.Status),
		Reference:        entry.Reference,
		CounterpartyType: counterpartyType,
		CounterpartyID:   counterpartyID,
		PreviousBalance:  decimalToNumeric(entry.PreviousBalance),
		CurrentBalance:   decimalToNumeric(entry.CurrentBalance),
		AccountVersion:   entry.AccountVersion,
		CreatedAt:        timeToPgTimestamptz(entry.CreatedAt),
	})

	return mapPgError(err)
}

// GetByAccount retrieves entries for an account, newest first.
func (r *EntryRepository) GetByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	rows, err := r.queries.GetEntriesByAccount(ctx, generated.GetEntriesByAccountParams{
		AccountID: accountID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// CountByAccount counts entries for an account.
func (r *EntryRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	return r.queries.CountEntriesByAccount(ctx, accountID)
}

// GetByTransfer retrieves the entry pair of a transfer.
func (r *EntryRepository) GetByTransfer(ctx context.Context, transferID string) ([]*domain.Entry, error) {
	rows, err := r.queries.GetEntriesByTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// GetByReference retrieves an entry by its unique reference.
func (r *EntryRepository) GetByReference(ctx context.Context, reference string) (*domain.Entry, error) {
	row, err := r.queries.GetEntryByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return rowToEntry(row), nil
}

// SumCompletedByAccount returns the signed sum of completed entries.
func (r *EntryRepository) SumCompletedByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	sum, err := r.queries.SumCompletedEntriesByAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

func rowToEntry(row generated.Entry) *domain.Entry {
	entry := &domain.Entry{
		ID:              row.ID,
		AccountID:       row.AccountID,
		TransferID:      row.TransferID,
		Kind:            domain.EntryKind(row.Kind),
		Amount:          numericToDecimal(row.Amount),
		Currency:        row.Currency,
		Status:          domain.EntryStatus(row.Status),
		Reference:       row.Reference,
		PreviousBalance: numericToDecimal(row.PreviousBalance),
		CurrentBalance:  numericToDecimal(row.CurrentBalance),
		AccountVersion:  row.AccountVersion,
		CreatedAt:       row.CreatedAt.Time,
	}

	if row.CounterpartyType != nil && row.CounterpartyID != nil {
		recipient := domain.Recipient{Type: domain.RecipientType(*row.CounterpartyType)}
		if recipient.Type == domain.RecipientMerchant {
			recipient.MerchantID = *row.CounterpartyID
		} else {
			recipient.AccountID = *row.CounterpartyID
		}
		entry.Counterparty = &recipient
	}

	return entry
}
