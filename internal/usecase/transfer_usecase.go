package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dpetruk/schedpay/internal/domain"
	"github.com/dpetruk/schedpay/internal/infrastructure/metrics"
)

// TransferUseCase executes point-to-point fund movements with
// all-or-nothing semantics. The sum of all balances is invariant under
// every call, whether it succeeds or fails.
type TransferUseCase struct {
	txManager    TransactionManager
	accountRepo  AccountRepository
	transferRepo TransferRepository
	idGen        IDGenerator
	retrier      Retrier
	metrics      *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	transferRepo TransferRepository,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:    txManager,
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
		idGen:        idGen,
		retrier:      retrier,
		metrics:      metrics,
	}
}

// ExecuteTransferInput represents input for executing a transfer.
type ExecuteTransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

// Execute moves Amount from one account to another.
//
// The debit is a conditional decrement: it only applies when the
// current balance covers the amount, so two concurrent transfers from
// the same account can never both observe a stale balance. Debit,
// credit and the Transfer record share one transaction; when the
// credit finds the recipient gone, the rollback restores the sender's
// balance before ErrInvalidAccount is surfaced.
func (uc *TransferUseCase) Execute(ctx context.Context, input ExecuteTransferInput) (*domain.Transfer, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		uc.recordError(domain.ErrInvalidAmount)
		return nil, domain.ErrInvalidAmount
	}

	if input.FromAccountID == input.ToAccountID {
		uc.recordError(domain.ErrSameAccount)
		return nil, domain.ErrSameAccount
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	start := time.Now()

	var transfer *domain.Transfer

	operation := func() error {
		t, err := uc.executeOnce(txCtx, input)
		if err != nil {
			return err
		}

		transfer = t

		return nil
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(txCtx, operation)
	} else {
		err = operation()
	}

	if err != nil {
		uc.recordError(err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransfersCreated.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
		uc.metrics.TransferAmount.Observe(input.Amount.InexactFloat64())
	}

	return transfer, nil
}

func (uc *TransferUseCase) executeOnce(ctx context.Context, input ExecuteTransferInput) (*domain.Transfer, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()

	debited, err := uc.accountRepo.DebitIfSufficient(ctx, tx, input.FromAccountID, input.Amount, now)
	if err != nil {
		return nil, err
	}

	if !debited {
		return nil, domain.ErrInsufficientBalance
	}

	credited, err := uc.accountRepo.Credit(ctx, tx, input.ToAccountID, input.Amount, now)
	if err != nil {
		return nil, err
	}

	if !credited {
		// Rollback re-credits the sender; no money leaves the ledger.
		return nil, domain.ErrInvalidAccount
	}

	transfer := &domain.Transfer{
		ID:            uc.idGen.Generate(),
		FromAccountID: input.FromAccountID,
		ToAccountID:   input.ToAccountID,
		Amount:        input.Amount,
		CreatedAt:     now,
	}

	if err := transfer.Validate(); err != nil {
		return nil, err
	}

	if err := uc.transferRepo.Create(ctx, tx, transfer); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return transfer, nil
}

// GetTransfer retrieves a transfer by ID.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, id string) (*domain.Transfer, error) {
	return uc.transferRepo.GetByID(ctx, id)
}

// ListTransfersByAccountInput represents input for listing transfers.
type ListTransfersByAccountInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListTransfersByAccount lists transfers for an account.
func (uc *TransferUseCase) ListTransfersByAccount(ctx context.Context, input ListTransfersByAccountInput) ([]*domain.Transfer, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.transferRepo.ListByAccount(ctx, input.AccountID, limit, offset)
}

func (uc *TransferUseCase) recordError(err error) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.TransferErrors.WithLabelValues(errorReason(err)).Inc()
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrSameAccount):
		return "same_account"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrInvalidAccount):
		return "invalid_account"
	default:
		return "other"
	}
}
