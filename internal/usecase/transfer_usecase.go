package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mbaye/kaalis/internal/domain"
)

// TransferUseCase moves money between exactly two parties as one indivisible
// operation: client-to-client transfers, and payments to clients or merchants.
type TransferUseCase struct {
	txManager    TransactionManager
	accountRepo  AccountRepository
	transferRepo TransferRepository
	entryRepo    EntryRepository
	directory    AccountDirectory
	ledger       *LedgerUseCase
	idGen        IDGenerator
	retrier      Retrier
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transferRepo TransferRepository,
	entryRepo EntryRepository,
	directory AccountDirectory,
	ledger *LedgerUseCase,
	idGen IDGenerator,
	retrier Retrier,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:    txManager,
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		entryRepo:    entryRepo,
		directory:    directory,
		ledger:       ledger,
		idGen:        idGen,
		retrier:      retrier,
	}
}

// TransferInput represents a client-to-client transfer request.
type TransferInput struct {
	FromAccountID  string
	ToAccountID    string
	Amount         decimal.Decimal
	IdempotencyKey *string
}

// Transfer debits the source and credits the destination as a single atomic
// unit: either both entries are completed, or neither is. Retrying with the
// same idempotency key returns the original receipt without moving money.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.Receipt, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.FromAccountID == input.ToAccountID {
		return nil, domain.ErrSelfTransferNotAllowed
	}

	if receipt, err := uc.replay(ctx, input.IdempotencyKey); receipt != nil || err != nil {
		return receipt, err
	}

	id := uc.idGen.Generate()
	creditRef := domain.TransferClientToClient.CreditRef(id)
	transfer := &domain.Transfer{
		ID:              id,
		Kind:            domain.TransferClientToClient,
		FromAccountID:   &input.FromAccountID,
		Recipient:       domain.ClientRecipient(input.ToAccountID),
		Amount:          input.Amount,
		Status:          domain.TransferInitiated,
		DebitReference:  domain.TransferClientToClient.DebitRef(id),
		CreditReference: &creditRef,
		IdempotencyKey:  input.IdempotencyKey,
	}

	return uc.execute(ctx, transfer)
}

// PayInput represents a payment request. Exactly one of RecipientPhone and
// MerchantCode must be set.
type PayInput struct {
	AccountID      string
	Amount         decimal.Decimal
	RecipientPhone string
	MerchantCode   string
	IdempotencyKey *string
}

// Pay debits the source account with a freshly generated PAY- reference.
// Client recipients get a matched PAY-IN- credit in the same transaction;
// merchants are not ledger-bearing, so merchant payments post only the debit.
func (uc *TransferUseCase) Pay(ctx context.Context, input PayInput) (*domain.Receipt, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if (input.RecipientPhone == "") == (input.MerchantCode == "") {
		return nil, domain.ErrInvalidRecipient
	}

	if receipt, err := uc.replay(ctx, input.IdempotencyKey); receipt != nil || err != nil {
		return receipt, err
	}

	recipient, err := uc.resolveRecipient(ctx, input)
	if err != nil {
		return nil, err
	}

	id := uc.idGen.Generate()
	transfer := &domain.Transfer{
		ID:             id,
		Kind:           domain.TransferPayment,
		FromAccountID:  &input.AccountID,
		Recipient:      recipient,
		Amount:         input.Amount,
		Status:         domain.TransferInitiated,
		DebitReference: domain.TransferPayment.DebitRef(id),
		IdempotencyKey: input.IdempotencyKey,
	}
	if recipient.Type == domain.RecipientClient {
		creditRef := domain.TransferPayment.CreditRef(id)
		transfer.CreditReference = &creditRef
	}

	return uc.execute(ctx, transfer)
}

func (uc *TransferUseCase) resolveRecipient(ctx context.Context, input PayInput) (domain.Recipient, error) {
	if input.MerchantCode != "" {
		merchant, err := uc.directory.ResolveByMerchantCode(ctx, input.MerchantCode)
		if err != nil {
			return domain.Recipient{}, err
		}
		return domain.MerchantRecipient(merchant.ID), nil
	}

	if err := domain.ValidatePhone(input.RecipientPhone); err != nil {
		return domain.Recipient{}, err
	}

	account, err := uc.directory.ResolveByPhone(ctx, input.RecipientPhone)
	if err != nil {
		return domain.Recipient{}, err
	}

	return domain.ClientRecipient(account.ID), nil
}

// execute runs the debit-then-credit sequence under one transaction boundary.
// A failure at any point leaves the ledger in the pre-operation state.
func (uc *TransferUseCase) execute(ctx context.Context, transfer *domain.Transfer) (*domain.Receipt, error) {
	if err := transfer.Validate(); err != nil {
		return nil, err
	}

	var receipt *domain.Receipt

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		accounts, err := uc.lockAccounts(ctx, tx, transfer)
		if err != nil {
			return err
		}

		source := accounts[*transfer.FromAccountID]
		if source == nil {
			return domain.ErrAccountNotFound
		}

		var destination *domain.Account
		if transfer.Recipient.Type == domain.RecipientClient {
			destination = accounts[transfer.Recipient.AccountID]
			if destination == nil {
				return domain.ErrRecipientNotFound
			}
			if destination.Currency != source.Currency {
				return domain.ErrCurrencyMismatch
			}
			if destination.ClientID == source.ClientID {
				if transfer.Kind == domain.TransferPayment {
					return domain.ErrSelfPaymentNotAllowed
				}
				return domain.ErrSelfTransferNotAllowed
			}
		}

		now := time.Now().UTC()
		transfer.Currency = source.Currency
		transfer.Status = domain.TransferInitiated
		transfer.CreatedAt = now
		transfer.UpdatedAt = now

		if err := source.ValidateDebit(transfer.Amount); err != nil {
			return err
		}
		if err := transfer.TransitionTo(domain.TransferValidated); err != nil {
			return err
		}

		if err := uc.transferRepo.Create(ctx, tx, transfer); err != nil {
			return err
		}

		debitKind := domain.EntryTransferDebit
		creditKind := domain.EntryTransferCredit
		if transfer.Kind == domain.TransferPayment {
			debitKind = domain.EntryPaymentDebit
			creditKind = domain.EntryPaymentCredit
		}

		counterparty := transfer.Recipient
		if _, err := uc.ledger.postDebit(ctx, tx, source, postInput{
			kind:         debitKind,
			amount:       transfer.Amount,
			reference:    transfer.DebitReference,
			transferID:   &transfer.ID,
			counterparty: &counterparty,
		}); err != nil {
			return err
		}
		if err := transfer.TransitionTo(domain.TransferPostedDebit); err != nil {
			return err
		}

		if destination != nil {
			sender := domain.ClientRecipient(source.ID)
			if _, err := uc.ledger.postCredit(ctx, tx, destination, postInput{
				kind:         creditKind,
				amount:       transfer.Amount,
				reference:    *transfer.CreditReference,
				transferID:   &transfer.ID,
				counterparty: &sender,
			}); err != nil {
				return err
			}
			if err := transfer.TransitionTo(domain.TransferPostedCredit); err != nil {
				return err
			}
		}

		if err := transfer.TransitionTo(domain.TransferCompleted); err != nil {
			return err
		}
		if err := uc.transferRepo.UpdateStatus(ctx, tx, transfer.ID, transfer.Status, time.Now().UTC()); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		receipt = &domain.Receipt{
			TransferID: transfer.ID,
			Reference:  transfer.DebitReference,
			Balance:    source.Balance,
			Currency:   source.Currency,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.ledger.invalidateBalance(ctx, *transfer.FromAccountID)
	if transfer.Recipient.Type == domain.RecipientClient {
		uc.ledger.invalidateBalance(ctx, transfer.Recipient.AccountID)
	}

	return receipt, nil
}

// lockAccounts acquires FOR UPDATE locks on every touched account in sorted
// ID order, so opposite-direction transfers cannot deadlock.
func (uc *TransferUseCase) lockAccounts(ctx context.Context, tx Transaction, transfer *domain.Transfer) (map[string]*domain.Account, error) {
	ids := []string{*transfer.FromAccountID}
	if transfer.Recipient.Type == domain.RecipientClient {
		ids = append(ids, transfer.Recipient.AccountID)
	}
	sort.Strings(ids)

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	m := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		m[a.ID] = a
	}

	return m, nil
}

// replay looks up a previously completed movement for the given idempotency
// key and rebuilds its original receipt.
func (uc *TransferUseCase) replay(ctx context.Context, key *string) (*domain.Receipt, error) {
	if key == nil || *key == "" {
		return nil, nil
	}

	prior, err := uc.transferRepo.GetByIdempotencyKey(ctx, *key)
	if err != nil {
		if errors.Is(err, domain.ErrTransferNotFound) {
			return nil, nil
		}
		return nil, err
	}

	debit, err := uc.entryRepo.GetByReference(ctx, prior.DebitReference)
	if err != nil {
		return nil, err
	}

	return &domain.Receipt{
		TransferID: prior.ID,
		Reference:  prior.DebitReference,
		Balance:    debit.CurrentBalance,
		Currency:   prior.Currency,
	}, nil
}

// GetTransfer retrieves a transfer by ID.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, id string) (*domain.Transfer, error) {
	return uc.transferRepo.GetByID(ctx, id)
}

// GetTransferEntries returns the entry pair a transfer produced. The transfer
// is fetched first so a bad ID fails with ErrTransferNotFound rather than an
// empty list.
func (uc *TransferUseCase) GetTransferEntries(ctx context.Context, id string) ([]*domain.Entry, error) {
	if _, err := uc.transferRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return uc.entryRepo.GetByTransfer(ctx, id)
}
