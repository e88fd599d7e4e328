package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbaye/kaalis/internal/domain"
	"github.com/mbaye/kaalis/internal/infrastructure/postgres/generated"
)

// DirectoryRepository implements usecase.AccountDirectory over the identity
// tables. Only verified clients resolve.
type DirectoryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewDirectoryRepository creates a new DirectoryRepository.
func NewDirectoryRepository(pool *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// ResolveByPhone resolves a verified client's phone number to their account.
func (r *DirectoryRepository) ResolveByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	row, err := r.queries.GetAccountByClientPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipientNotFound
		}

		return nil, err
	}

	return rowToAccount(row), nil
}

// ResolveByMerchantCode resolves a merchant code to a merchant reference.
func (r *DirectoryRepository) ResolveByMerchantCode(ctx context.Context, code string) (*domain.MerchantRef, error) {
	row, err := r.queries.GetMerchantByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipientNotFound
		}

		return nil, err
	}

	return &domain.MerchantRef{
		ID:   row.ID,
		Name: row.Name,
		Code: row.Code,
	}, nil
}
