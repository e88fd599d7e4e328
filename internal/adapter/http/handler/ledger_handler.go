package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mbaye/kaalis/internal/usecase"
)

// LedgerHandler exposes reconciliation and consistency checks.
type LedgerHandler struct {
	reconciliationUC *usecase.ReconciliationUseCase
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(reconciliationUC *usecase.ReconciliationUseCase) *LedgerHandler {
	return &LedgerHandler{reconciliationUC: reconciliationUC}
}

// ReconcileAccount compares one account's cached balance against its entry log.
func (h *LedgerHandler) ReconcileAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	result, err := h.reconciliationUC.ReconcileAccount(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to reconcile account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, result)
}

// RepairAccount rewrites a drifted cached balance from the entry log.
func (h *LedgerHandler) RepairAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	result, err := h.reconciliationUC.RepairAccount(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to repair account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Report reconciles every account and checks transfer pair conservation.
func (h *LedgerHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconciliationUC.GenerateReport(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Consistency verifies the ledger-wide invariants in aggregate. A drifted or
// broken ledger is reported as a 200 with consistent=false and a detail line.
func (h *LedgerHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"consistent": true}

	consistent, err := h.reconciliationUC.CheckConsistency(r.Context())
	resp["consistent"] = consistent
	if err != nil {
		resp["detail"] = err.Error()
	}

	writeJSON(w, http.StatusOK, resp)
}
