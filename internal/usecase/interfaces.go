package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// EntryRepository defines data access for ledger entries.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	GetByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
	CountByAccount(ctx context.Context, accountID string) (int64, error)
	GetByTransfer(ctx context.Context, transferID string) ([]*domain.Entry, error)
	GetByReference(ctx context.Context, reference string) (*domain.Entry, error)
	SumCompletedByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// TransferRepository defines data access for transfers.
type TransferRepository interface {
	Create(ctx context.Context, tx Transaction, transfer *domain.Transfer) error
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.TransferStatus, updatedAt time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Transfer, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Transfer, error)
}

// AccountDirectory resolves client identifiers to ledger parties. It is owned
// by identity management; only confirmed identities are resolvable.
type AccountDirectory interface {
	ResolveByPhone(ctx context.Context, phone string) (*domain.Account, error)
	ResolveByMerchantCode(ctx context.Context, code string) (*domain.MerchantRef, error)
}

// LedgerRepository defines ledger-wide consistency queries.
type LedgerRepository interface {
	// Totals returns the sum of cached account balances and the signed sum
	// of completed entries. The two must be equal at all times.
	Totals(ctx context.Context) (cached, computed decimal.Decimal, err error)
	// BrokenTransferPairs returns IDs of completed two-sided transfers whose
	// entries do not net to zero.
	BrokenTransferPairs(ctx context.Context) ([]string, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation on transient storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// Notifier delivers out-of-band notices to clients. Delivery itself lives
// outside this core; implementations may simulate.
type Notifier interface {
	SendAccountNotice(ctx context.Context, phone, message string) error
}
