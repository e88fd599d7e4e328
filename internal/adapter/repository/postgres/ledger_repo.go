package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/infrastructure/postgres/generated"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Totals returns the sum of cached balances and the signed sum of completed
// entries across the whole ledger.
func (r *LedgerRepository) Totals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	row, err := r.queries.LedgerTotals(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(row.Cached), numericToDecimal(row.Computed), nil
}

// BrokenTransferPairs returns completed two-sided transfers whose entries do
// not net to zero.
func (r *LedgerRepository) BrokenTransferPairs(ctx context.Context) ([]string, error) {
	return r.queries.BrokenTransferPairs(ctx)
}
