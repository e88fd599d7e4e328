package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/domain"
)

// AccountUseCase handles account lifecycle and read-side queries.
type AccountUseCase struct {
	accountRepo     AccountRepository
	entryRepo       EntryRepository
	idGen           IDGenerator
	cache           Cache
	notifier        Notifier
	defaultCurrency string
}

// NewAccountUseCase creates a new AccountUseCase. defaultCurrency is used for
// accounts opened without an explicit currency; empty falls back to the
// domain default.
func NewAccountUseCase(
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	idGen IDGenerator,
	cache Cache,
	notifier Notifier,
	defaultCurrency string,
) *AccountUseCase {
	if defaultCurrency == "" {
		defaultCurrency = domain.DefaultCurrency
	}
	return &AccountUseCase{
		accountRepo:     accountRepo,
		entryRepo:       entryRepo,
		idGen:           idGen,
		cache:           cache,
		notifier:        notifier,
		defaultCurrency: defaultCurrency,
	}
}

// OpenAccountInput represents input for opening an account. Accounts are
// opened once, after the client's identity is confirmed upstream.
type OpenAccountInput struct {
	ClientID string
	Phone    string
	Currency string
}

// OpenAccount creates a zero-balance account with a generated account number.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	currency := input.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}
	if err := domain.ValidateCurrency(currency); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	id := uc.idGen.Generate()

	account := &domain.Account{
		ID:        id,
		ClientID:  input.ClientID,
		Number:    accountNumber(id),
		Currency:  currency,
		Balance:   decimal.Zero,
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.notifier != nil && input.Phone != "" {
		// Delivery failures never fail the opening.
		_ = uc.notifier.SendAccountNotice(ctx, input.Phone,
			fmt.Sprintf("Votre compte %s est ouvert.", account.Number))
	}

	return account, nil
}

// accountNumber derives a human-facing number from the account ID suffix.
func accountNumber(id string) string {
	suffix := id
	if len(suffix) > 10 {
		suffix = suffix[len(suffix)-10:]
	}
	return "CMPT-" + strings.ToUpper(suffix)
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// BalanceInfo is the read model for the balance endpoint.
type BalanceInfo struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Number   string          `json:"account_number"`
}

// GetBalance returns balance, currency and account number, read through a
// short-TTL cache.
func (uc *AccountUseCase) GetBalance(ctx context.Context, accountID string) (*BalanceInfo, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, balanceCacheKey(accountID)); err == nil && raw != nil {
			var info BalanceInfo
			if err := json.Unmarshal(raw, &info); err == nil {
				return &info, nil
			}
		}
	}

	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	info := &BalanceInfo{
		Balance:  account.Balance,
		Currency: account.Currency,
		Number:   account.Number,
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(info); err == nil {
			_ = uc.cache.Set(ctx, balanceCacheKey(accountID), raw, BalanceCacheTTL)
		}
	}

	return info, nil
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}

// Pagination describes one page of a history listing.
type Pagination struct {
	Page    int   `json:"current_page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

// ListEntriesInput represents input for listing an account's history.
type ListEntriesInput struct {
	AccountID string
	Page      int
	PerPage   int
}

// ListEntries returns an account's entries newest-first with pagination.
func (uc *AccountUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.Entry, *Pagination, error) {
	page, perPage := domain.ValidatePagination(input.Page, input.PerPage)

	entries, err := uc.entryRepo.GetByAccount(ctx, input.AccountID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}

	total, err := uc.entryRepo.CountByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, nil, err
	}

	return entries, &Pagination{Page: page, PerPage: perPage, Total: total}, nil
}
