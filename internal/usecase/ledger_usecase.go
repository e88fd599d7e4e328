package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/domain"
)

// LedgerUseCase computes and safely mutates a single account's balance.
// Every mutation inserts an entry and updates the cached balance in the same
// transaction, so the cache and the entry log never diverge.
type LedgerUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	idGen       IDGenerator
	retrier     Retrier
	cache       Cache
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		idGen:       idGen,
		retrier:     retrier,
		cache:       cache,
	}
}

// BalanceOf returns the account's balance. The cached column is authoritative
// for reads because every write path updates it transactionally.
func (uc *LedgerUseCase) BalanceOf(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// postInput carries one side of a movement into an open transaction.
type postInput struct {
	kind         domain.EntryKind
	amount       decimal.Decimal
	reference    string
	transferID   *string
	counterparty *domain.Recipient
}

// postDebit appends a completed debit entry and lowers the cached balance,
// inside the caller's transaction. The account must be row-locked.
func (uc *LedgerUseCase) postDebit(ctx context.Context, tx Transaction, account *domain.Account, in postInput) (*domain.Entry, error) {
	if err := account.ValidateDebit(in.amount); err != nil {
		return nil, err
	}
	return uc.post(ctx, tx, account, in, account.ApplyDebit(in.amount))
}

// postCredit appends a completed credit entry and raises the cached balance,
// inside the caller's transaction. The account must be row-locked.
func (uc *LedgerUseCase) postCredit(ctx context.Context, tx Transaction, account *domain.Account, in postInput) (*domain.Entry, error) {
	return uc.post(ctx, tx, account, in, account.ApplyCredit(in.amount))
}

func (uc *LedgerUseCase) post(ctx context.Context, tx Transaction, account *domain.Account, in postInput, newBalance decimal.Decimal) (*domain.Entry, error) {
	now := time.Now().UTC()

	entry := &domain.Entry{
		ID:              uc.idGen.Generate(),
		AccountID:       account.ID,
		TransferID:      in.transferID,
		Kind:            in.kind,
		Amount:          in.amount,
		Currency:        account.Currency,
		Status:          domain.EntryCompleted,
		Reference:       in.reference,
		Counterparty:    in.counterparty,
		PreviousBalance: account.Balance,
		CurrentBalance:  newBalance,
		AccountVersion:  account.Version + 1,
		CreatedAt:       now,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
		return nil, err
	}

	account.Balance = newBalance
	account.Version++
	account.UpdatedAt = now

	return entry, nil
}

// CreditInput represents a standalone credit.
type CreditInput struct {
	AccountID    string
	Amount       decimal.Decimal
	Kind         domain.EntryKind
	Reference    string
	Counterparty *domain.Recipient
}

// DebitInput represents a standalone debit.
type DebitInput struct {
	AccountID    string
	Amount       decimal.Decimal
	Kind         domain.EntryKind
	Reference    string
	Counterparty *domain.Recipient
}

// Credit appends a completed credit entry in its own transaction.
// Fails with ErrInvalidAmount for non-positive amounts and
// ErrDuplicateReference when the reference was already used.
func (uc *LedgerUseCase) Credit(ctx context.Context, input CreditInput) (*domain.Entry, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	return uc.apply(ctx, input.AccountID, func(ctx context.Context, tx Transaction, account *domain.Account) (*domain.Entry, error) {
		return uc.postCredit(ctx, tx, account, postInput{
			kind:         input.Kind,
			amount:       input.Amount,
			reference:    input.Reference,
			counterparty: input.Counterparty,
		})
	})
}

// Debit appends a completed debit entry in its own transaction, only if the
// resulting balance stays non-negative; otherwise nothing is posted.
func (uc *LedgerUseCase) Debit(ctx context.Context, input DebitInput) (*domain.Entry, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	return uc.apply(ctx, input.AccountID, func(ctx context.Context, tx Transaction, account *domain.Account) (*domain.Entry, error) {
		return uc.postDebit(ctx, tx, account, postInput{
			kind:         input.Kind,
			amount:       input.Amount,
			reference:    input.Reference,
			counterparty: input.Counterparty,
		})
	})
}

// DepositInput represents money entering the ledger from outside.
type DepositInput struct {
	AccountID string
	Amount    decimal.Decimal
}

// Deposit credits an account with a freshly generated DEP- reference.
func (uc *LedgerUseCase) Deposit(ctx context.Context, input DepositInput) (*domain.Receipt, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	reference := domain.TransferDeposit.DebitRef(uc.idGen.Generate())

	entry, err := uc.apply(ctx, input.AccountID, func(ctx context.Context, tx Transaction, account *domain.Account) (*domain.Entry, error) {
		return uc.postCredit(ctx, tx, account, postInput{
			kind:      domain.EntryDeposit,
			amount:    input.Amount,
			reference: reference,
		})
	})
	if err != nil {
		return nil, err
	}

	return &domain.Receipt{
		TransferID: entry.ID,
		Reference:  entry.Reference,
		Balance:    entry.CurrentBalance,
		Currency:   entry.Currency,
	}, nil
}

// apply runs one single-account mutation under a row lock, retried on
// serialization conflicts.
func (uc *LedgerUseCase) apply(
	ctx context.Context,
	accountID string,
	post func(ctx context.Context, tx Transaction, account *domain.Account) (*domain.Entry, error),
) (*domain.Entry, error) {
	var entry *domain.Entry

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}

		entry, err = post(ctx, tx, account)
		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateBalance(ctx, accountID)

	return entry, nil
}

func (uc *LedgerUseCase) invalidateBalance(ctx context.Context, accountID string) {
	if uc.cache == nil {
		return
	}
	// Best effort: the cache TTL bounds staleness anyway.
	_ = uc.cache.Delete(ctx, balanceCacheKey(accountID))
}
