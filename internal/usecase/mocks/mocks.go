package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/domain"
	"github.com/mbaye/kaalis/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc            func(ctx context.Context, account *domain.Account) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdateFunc  func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Account, error)
	UpdateBalanceFunc     func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	ListFunc              func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Account, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, id := range ids {
		if acc, ok := m.accounts[id]; ok {
			accounts = append(accounts, acc)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Balance = balance
		acc.Version++
		acc.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.Entry

	CreateFunc                func(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error
	GetByAccountFunc          func(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
	CountByAccountFunc        func(ctx context.Context, accountID string) (int64, error)
	GetByTransferFunc         func(ctx context.Context, transferID string) ([]*domain.Entry, error)
	GetByReferenceFunc        func(ctx context.Context, reference string) (*domain.Entry, error)
	SumCompletedByAccountFunc func(ctx context.Context, accountID string) (decimal.Decimal, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]*domain.Entry),
	}
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.Reference == entry.Reference {
			return domain.ErrDuplicateReference
		}
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) GetByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	if m.GetByAccountFunc != nil {
		return m.GetByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.Entry
	for _, e := range m.entries {
		if e.AccountID == accountID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	if offset >= len(entries) {
		return nil, nil
	}
	entries = entries[offset:]
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (m *MockEntryRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	if m.CountByAccountFunc != nil {
		return m.CountByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, e := range m.entries {
		if e.AccountID == accountID {
			n++
		}
	}
	return n, nil
}

func (m *MockEntryRepository) GetByTransfer(ctx context.Context, transferID string) ([]*domain.Entry, error) {
	if m.GetByTransferFunc != nil {
		return m.GetByTransferFunc(ctx, transferID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.Entry
	for _, e := range m.entries {
		if e.TransferID != nil && *e.TransferID == transferID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockEntryRepository) GetByReference(ctx context.Context, reference string) (*domain.Entry, error) {
	if m.GetByReferenceFunc != nil {
		return m.GetByReferenceFunc(ctx, reference)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.Reference == reference {
			return e, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockEntryRepository) SumCompletedByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if m.SumCompletedByAccountFunc != nil {
		return m.SumCompletedByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, e := range m.entries {
		if e.AccountID == accountID && e.Status == domain.EntryCompleted {
			sum = sum.Add(e.SignedAmount())
		}
	}
	return sum, nil
}

// MockTransferRepository is a mock implementation of TransferRepository.
type MockTransferRepository struct {
	mu        sync.RWMutex
	transfers map[string]*domain.Transfer

	CreateFunc              func(ctx context.Context, tx usecase.Transaction, transfer *domain.Transfer) error
	UpdateStatusFunc        func(ctx context.Context, tx usecase.Transaction, id string, status domain.TransferStatus, updatedAt time.Time) error
	GetByIDFunc             func(ctx context.Context, id string) (*domain.Transfer, error)
	GetByIdempotencyKeyFunc func(ctx context.Context, key string) (*domain.Transfer, error)
}

func NewMockTransferRepository() *MockTransferRepository {
	return &MockTransferRepository{
		transfers: make(map[string]*domain.Transfer),
	}
}

func (m *MockTransferRepository) Create(ctx context.Context, tx usecase.Transaction, transfer *domain.Transfer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, transfer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transfers[transfer.ID] = transfer
	return nil
}

func (m *MockTransferRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.TransferStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.transfers[id]; ok {
		t.Status = status
		t.UpdatedAt = updatedAt
		return nil
	}
	return domain.ErrTransferNotFound
}

func (m *MockTransferRepository) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.transfers[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTransferNotFound
}

func (m *MockTransferRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Transfer, error) {
	if m.GetByIdempotencyKeyFunc != nil {
		return m.GetByIdempotencyKeyFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.transfers {
		if t.IdempotencyKey != nil && *t.IdempotencyKey == key && t.Status == domain.TransferCompleted {
			return t, nil
		}
	}
	return nil, domain.ErrTransferNotFound
}

// MockAccountDirectory is a mock implementation of AccountDirectory.
type MockAccountDirectory struct {
	mu        sync.RWMutex
	byPhone   map[string]*domain.Account
	merchants map[string]*domain.MerchantRef

	ResolveByPhoneFunc        func(ctx context.Context, phone string) (*domain.Account, error)
	ResolveByMerchantCodeFunc func(ctx context.Context, code string) (*domain.MerchantRef, error)
}

func NewMockAccountDirectory() *MockAccountDirectory {
	return &MockAccountDirectory{
		byPhone:   make(map[string]*domain.Account),
		merchants: make(map[string]*domain.MerchantRef),
	}
}

func (m *MockAccountDirectory) RegisterPhone(phone string, account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byPhone[phone] = account
}

func (m *MockAccountDirectory) RegisterMerchant(merchant *domain.MerchantRef) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.merchants[merchant.Code] = merchant
}

func (m *MockAccountDirectory) ResolveByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	if m.ResolveByPhoneFunc != nil {
		return m.ResolveByPhoneFunc(ctx, phone)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.byPhone[phone]; ok {
		return acc, nil
	}
	return nil, domain.ErrRecipientNotFound
}

func (m *MockAccountDirectory) ResolveByMerchantCode(ctx context.Context, code string) (*domain.MerchantRef, error) {
	if m.ResolveByMerchantCodeFunc != nil {
		return m.ResolveByMerchantCodeFunc(ctx, code)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if merchant, ok := m.merchants[code]; ok {
		return merchant, nil
	}
	return nil, domain.ErrRecipientNotFound
}

// MockLedgerRepository is a mock implementation of LedgerRepository.
type MockLedgerRepository struct {
	TotalsFunc              func(ctx context.Context) (decimal.Decimal, decimal.Decimal, error)
	BrokenTransferPairsFunc func(ctx context.Context) ([]string, error)
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{}
}

func (m *MockLedgerRepository) Totals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	if m.TotalsFunc != nil {
		return m.TotalsFunc(ctx)
	}
	return decimal.Zero, decimal.Zero, nil
}

func (m *MockLedgerRepository) BrokenTransferPairs(ctx context.Context) ([]string, error) {
	if m.BrokenTransferPairsFunc != nil {
		return m.BrokenTransferPairsFunc(ctx)
	}
	return nil, nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockRetrier runs the operation once, without backoff.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}

// MockNotifier is a mock implementation of Notifier.
type MockNotifier struct {
	mu   sync.Mutex
	Sent []string

	SendAccountNoticeFunc func(ctx context.Context, phone, message string) error
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) SendAccountNotice(ctx context.Context, phone, message string) error {
	if m.SendAccountNoticeFunc != nil {
		return m.SendAccountNoticeFunc(ctx, phone, message)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, phone+": "+message)
	return nil
}
