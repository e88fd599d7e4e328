package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/domain"
	"github.com/mbaye/kaalis/internal/usecase"
	"github.com/mbaye/kaalis/internal/usecase/mocks"
)

func newReconciliationFixture() (*usecase.ReconciliationUseCase, *mocks.MockAccountRepository, *mocks.MockEntryRepository, *mocks.MockLedgerRepository) {
	accRepo := mocks.NewMockAccountRepository()
	entryRepo := mocks.NewMockEntryRepository()
	ledgerRepo := mocks.NewMockLedgerRepository()
	uc := usecase.NewReconciliationUseCase(mocks.NewMockTransactionManager(), accRepo, entryRepo, ledgerRepo)
	return uc, accRepo, entryRepo, ledgerRepo
}

func seedEntry(t *testing.T, repo *mocks.MockEntryRepository, id, accountID string, kind domain.EntryKind, amount int64) {
	t.Helper()
	err := repo.Create(context.Background(), nil, &domain.Entry{
		ID:        id,
		AccountID: accountID,
		Kind:      kind,
		Amount:    decimal.NewFromInt(amount),
		Status:    domain.EntryCompleted,
		Reference: "REF-" + id,
	})
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}
}

func TestReconciliationUseCase_ReconcileAccount(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		uc, accRepo, entryRepo, _ := newReconciliationFixture()
		seedAccount(t, accRepo, "acc-1", 70)
		seedEntry(t, entryRepo, "e1", "acc-1", domain.EntryDeposit, 100)
		seedEntry(t, entryRepo, "e2", "acc-1", domain.EntryPaymentDebit, 30)

		result, err := uc.ReconcileAccount(context.Background(), "acc-1")
		if err != nil {
			t.Fatalf("ReconcileAccount() error = %v", err)
		}
		if !result.IsReconciled {
			t.Errorf("IsReconciled = false, difference %s", result.Difference)
		}
	})

	t.Run("drifted", func(t *testing.T) {
		uc, accRepo, entryRepo, _ := newReconciliationFixture()
		seedAccount(t, accRepo, "acc-1", 100)
		seedEntry(t, entryRepo, "e1", "acc-1", domain.EntryDeposit, 70)

		result, err := uc.ReconcileAccount(context.Background(), "acc-1")
		if err != nil {
			t.Fatalf("ReconcileAccount() error = %v", err)
		}
		if result.IsReconciled {
			t.Error("IsReconciled = true, want false")
		}
		if !result.Difference.Equal(decimal.NewFromInt(30)) {
			t.Errorf("Difference = %s, want 30", result.Difference)
		}
	})

	t.Run("pending entries excluded", func(t *testing.T) {
		uc, accRepo, entryRepo, _ := newReconciliationFixture()
		seedAccount(t, accRepo, "acc-1", 100)
		seedEntry(t, entryRepo, "e1", "acc-1", domain.EntryDeposit, 100)
		err := entryRepo.Create(context.Background(), nil, &domain.Entry{
			ID:        "e2",
			AccountID: "acc-1",
			Kind:      domain.EntryDeposit,
			Amount:    decimal.NewFromInt(50),
			Status:    domain.EntryPending,
			Reference: "REF-e2",
		})
		if err != nil {
			t.Fatalf("seed pending entry: %v", err)
		}

		result, err := uc.ReconcileAccount(context.Background(), "acc-1")
		if err != nil {
			t.Fatalf("ReconcileAccount() error = %v", err)
		}
		if !result.IsReconciled {
			t.Errorf("IsReconciled = false, computed %s", result.ComputedBalance)
		}
	})
}

func TestReconciliationUseCase_RepairAccount(t *testing.T) {
	uc, accRepo, entryRepo, _ := newReconciliationFixture()
	seedAccount(t, accRepo, "acc-1", 100)
	seedEntry(t, entryRepo, "e1", "acc-1", domain.EntryDeposit, 60)

	result, err := uc.RepairAccount(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("RepairAccount() error = %v", err)
	}
	if !result.IsReconciled {
		t.Error("IsReconciled = false after repair")
	}

	account, _ := accRepo.GetByID(context.Background(), "acc-1")
	if !account.Balance.Equal(decimal.NewFromInt(60)) {
		t.Errorf("balance after repair = %s, want 60", account.Balance)
	}
}

func TestReconciliationUseCase_GenerateReport(t *testing.T) {
	uc, accRepo, entryRepo, ledgerRepo := newReconciliationFixture()
	seedAccount(t, accRepo, "acc-1", 50)
	seedAccount(t, accRepo, "acc-2", 100)
	seedEntry(t, entryRepo, "e1", "acc-1", domain.EntryDeposit, 50)
	seedEntry(t, entryRepo, "e2", "acc-2", domain.EntryDeposit, 80)
	ledgerRepo.BrokenTransferPairsFunc = func(ctx context.Context) ([]string, error) {
		return []string{"trf-9"}, nil
	}

	report, err := uc.GenerateReport(context.Background())
	if err != nil {
		t.Fatalf("GenerateReport() error = %v", err)
	}

	if report.TotalAccounts != 2 {
		t.Errorf("TotalAccounts = %d, want 2", report.TotalAccounts)
	}
	if report.ReconciledAccounts != 1 {
		t.Errorf("ReconciledAccounts = %d, want 1", report.ReconciledAccounts)
	}
	if len(report.Discrepancies) != 1 || report.Discrepancies[0].AccountID != "acc-2" {
		t.Errorf("Discrepancies = %+v, want acc-2 only", report.Discrepancies)
	}
	if report.Consistent {
		t.Error("Consistent = true, want false")
	}
}

func TestReconciliationUseCase_CheckConsistency(t *testing.T) {
	t.Run("consistent", func(t *testing.T) {
		uc, _, _, ledgerRepo := newReconciliationFixture()
		ledgerRepo.TotalsFunc = func(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
			return decimal.NewFromInt(500), decimal.NewFromInt(500), nil
		}

		ok, err := uc.CheckConsistency(context.Background())
		if err != nil || !ok {
			t.Fatalf("CheckConsistency() = (%v, %v), want (true, nil)", ok, err)
		}
	})

	t.Run("aggregate drift", func(t *testing.T) {
		uc, _, _, ledgerRepo := newReconciliationFixture()
		ledgerRepo.TotalsFunc = func(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
			return decimal.NewFromInt(500), decimal.NewFromInt(470), nil
		}

		ok, err := uc.CheckConsistency(context.Background())
		if ok || err == nil {
			t.Fatalf("CheckConsistency() = (%v, %v), want (false, err)", ok, err)
		}
	})

	t.Run("broken pair", func(t *testing.T) {
		uc, _, _, ledgerRepo := newReconciliationFixture()
		ledgerRepo.BrokenTransferPairsFunc = func(ctx context.Context) ([]string, error) {
			return []string{"trf-1"}, nil
		}

		ok, err := uc.CheckConsistency(context.Background())
		if ok || err == nil {
			t.Fatalf("CheckConsistency() = (%v, %v), want (false, err)", ok, err)
		}
	})
}
