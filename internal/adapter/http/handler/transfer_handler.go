package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mbaye/kaalis/internal/adapter/http/dto"
	"github.com/mbaye/kaalis/internal/usecase"
)

// TransferHandler handles money movement HTTP requests.
type TransferHandler struct {
	transferUC *usecase.TransferUseCase
	ledgerUC   *usecase.LedgerUseCase
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC *usecase.TransferUseCase, ledgerUC *usecase.LedgerUseCase) *TransferHandler {
	return &TransferHandler{
		transferUC: transferUC,
		ledgerUC:   ledgerUC,
	}
}

// Transfer moves money from the account in the URL to another account.
func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipt, err := h.transferUC.Transfer(r.Context(), req.ToUseCaseInput(accountID, idempotencyKey(r)))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to transfer", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ReceiptFromDomain(receipt))
}

// Pay debits the account in the URL toward a client phone or merchant code.
func (h *TransferHandler) Pay(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipt, err := h.transferUC.Pay(r.Context(), req.ToUseCaseInput(accountID, idempotencyKey(r)))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to pay", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ReceiptFromDomain(receipt))
}

// Deposit credits the account in the URL with money from outside the ledger.
func (h *TransferHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipt, err := h.ledgerUC.Deposit(r.Context(), req.ToUseCaseInput(accountID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to deposit", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.ReceiptFromDomain(receipt))
}

// Get retrieves a transfer by ID.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transfer ID", "")
		return
	}

	transfer, err := h.transferUC.GetTransfer(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transfer", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransferFromDomain(transfer))
}

// Entries lists the entry pair a transfer produced.
func (h *TransferHandler) Entries(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transfer ID", "")
		return
	}

	entries, err := h.transferUC.GetTransferEntries(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transfer entries", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}
