package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationUseCase recomputes balances from the entry log and compares
// them against the cached column. The log is ground truth; drifted caches are
// repairable from it.
type ReconciliationUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	ledgerRepo  LedgerRepository
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	ledgerRepo LedgerRepository,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// ReconciliationResult compares one account's cached and derived balances.
type ReconciliationResult struct {
	AccountID       string          `json:"account_id"`
	CachedBalance   decimal.Decimal `json:"cached_balance"`
	ComputedBalance decimal.Decimal `json:"computed_balance"`
	Difference      decimal.Decimal `json:"difference"`
	IsReconciled    bool            `json:"is_reconciled"`
	CheckedAt       time.Time       `json:"checked_at"`
}

// ReconcileAccount recomputes the signed sum of completed entries for one
// account and compares it to the cached balance.
func (uc *ReconciliationUseCase) ReconcileAccount(ctx context.Context, accountID string) (*ReconciliationResult, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	computed, err := uc.entryRepo.SumCompletedByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	diff := account.Balance.Sub(computed)

	return &ReconciliationResult{
		AccountID:       accountID,
		CachedBalance:   account.Balance,
		ComputedBalance: computed,
		Difference:      diff,
		IsReconciled:    diff.IsZero(),
		CheckedAt:       time.Now().UTC(),
	}, nil
}

// RepairAccount rewrites a drifted cached balance from the entry log, under
// the same row lock mutations take.
func (uc *ReconciliationUseCase) RepairAccount(ctx context.Context, accountID string) (*ReconciliationResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}

	computed, err := uc.entryRepo.SumCompletedByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	diff := account.Balance.Sub(computed)
	if !diff.IsZero() {
		if err := uc.accountRepo.UpdateBalance(ctx, tx, accountID, computed, time.Now().UTC()); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &ReconciliationResult{
		AccountID:       accountID,
		CachedBalance:   computed,
		ComputedBalance: computed,
		Difference:      decimal.Zero,
		IsReconciled:    true,
		CheckedAt:       time.Now().UTC(),
	}, nil
}

// ReconciliationReport is a ledger-wide consistency report.
type ReconciliationReport struct {
	TotalAccounts      int                     `json:"total_accounts"`
	ReconciledAccounts int                     `json:"reconciled_accounts"`
	Discrepancies      []*ReconciliationResult `json:"discrepancies"`
	BrokenPairs        []string                `json:"broken_pairs"`
	Consistent         bool                    `json:"consistent"`
	CheckedAt          time.Time               `json:"checked_at"`
}

// GenerateReport reconciles every account and checks conservation of money
// across completed transfer pairs.
func (uc *ReconciliationUseCase) GenerateReport(ctx context.Context) (*ReconciliationReport, error) {
	accounts, err := uc.accountRepo.List(ctx, 10000, 0)
	if err != nil {
		return nil, err
	}

	report := &ReconciliationReport{
		TotalAccounts: len(accounts),
		Discrepancies: make([]*ReconciliationResult, 0),
		CheckedAt:     time.Now().UTC(),
	}

	for _, account := range accounts {
		result, err := uc.ReconcileAccount(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("reconcile account %s: %w", account.ID, err)
		}
		if result.IsReconciled {
			report.ReconciledAccounts++
		} else {
			report.Discrepancies = append(report.Discrepancies, result)
		}
	}

	broken, err := uc.ledgerRepo.BrokenTransferPairs(ctx)
	if err != nil {
		return nil, err
	}
	report.BrokenPairs = broken

	report.Consistent = len(report.Discrepancies) == 0 && len(broken) == 0

	return report, nil
}

// CheckConsistency verifies that the cached balances and the entry log agree
// in aggregate.
func (uc *ReconciliationUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	cached, computed, err := uc.ledgerRepo.Totals(ctx)
	if err != nil {
		return false, err
	}
	if !cached.Equal(computed) {
		return false, fmt.Errorf("ledger drift: cached=%s computed=%s", cached, computed)
	}

	broken, err := uc.ledgerRepo.BrokenTransferPairs(ctx)
	if err != nil {
		return false, err
	}
	if len(broken) > 0 {
		return false, fmt.Errorf("%d transfer pairs do not net to zero", len(broken))
	}

	return true, nil
}
