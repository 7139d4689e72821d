package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/dpetruk/schedpay/internal/domain"
	"github.com/dpetruk/schedpay/internal/infrastructure/metrics"
)

// TransferExecutor is the part of the transfer engine the payment
// executor depends on.
type TransferExecutor interface {
	Execute(ctx context.Context, input ExecuteTransferInput) (*domain.Transfer, error)
}

// DuePaymentSelector is the part of the scheduler the executor's batch
// run depends on.
type DuePaymentSelector interface {
	DuePayments(ctx context.Context, forDate time.Time) ([]*domain.ScheduledPayment, error)
}

// ExecutorUseCase drives one execution attempt of a scheduled payment
// through the transfer engine and records the outcome.
type ExecutorUseCase struct {
	engine      TransferExecutor
	scheduler   DuePaymentSelector
	paymentRepo PaymentRepository
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewExecutorUseCase creates a new ExecutorUseCase.
func NewExecutorUseCase(
	engine TransferExecutor,
	scheduler DuePaymentSelector,
	paymentRepo PaymentRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *ExecutorUseCase {
	return &ExecutorUseCase{
		engine:      engine,
		scheduler:   scheduler,
		paymentRepo: paymentRepo,
		idGen:       idGen,
		metrics:     metrics,
	}
}

// Run executes one scheduled payment attempt dated today.
func (uc *ExecutorUseCase) Run(ctx context.Context, payment *domain.ScheduledPayment) (*domain.Payment, error) {
	return uc.run(ctx, payment, time.Now().UTC())
}

// RunDue selects the payments due on forDate and executes each of
// them. A payment that fails with a propagated fault does not stop the
// rest of the batch; the errors are joined and returned alongside the
// outcomes that were recorded.
func (uc *ExecutorUseCase) RunDue(ctx context.Context, forDate time.Time) ([]*domain.Payment, error) {
	if forDate.IsZero() {
		forDate = time.Now().UTC()
	}

	due, err := uc.scheduler.DuePayments(ctx, forDate)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.SchedulerRuns.Inc()
	}

	var (
		payments []*domain.Payment
		errs     []error
	)

	for _, sp := range due {
		payment, err := uc.run(ctx, sp, forDate)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		payments = append(payments, payment)
	}

	return payments, errors.Join(errs...)
}

// run attempts the transfer and records exactly one Payment for the
// attempt: success with a transfer reference, or failure with a
// reason, never both. Insufficient balance is the one engine failure
// treated as a recorded business outcome; everything else is a
// definition or account-lifecycle fault and propagates.
func (uc *ExecutorUseCase) run(ctx context.Context, sp *domain.ScheduledPayment, forDate time.Time) (*domain.Payment, error) {
	if err := sp.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var payment *domain.Payment

	transfer, err := uc.engine.Execute(ctx, ExecuteTransferInput{
		FromAccountID: sp.FromAccountID,
		ToAccountID:   sp.ToAccountID,
		Amount:        sp.Amount,
	})

	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		payment = domain.NewFailedPayment(uc.idGen.Generate(), forDate, sp.ID, domain.ReasonInsufficientFunds, now)
	case err != nil:
		return nil, err
	default:
		payment = domain.NewSuccessfulPayment(uc.idGen.Generate(), forDate, sp.ID, transfer.ID, now)
	}

	if err := payment.Validate(); err != nil {
		return nil, err
	}

	// Creating the record is the final step, a single append.
	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		result := "success"
		if !payment.IsSuccessful {
			result = "failure"
		}

		uc.metrics.PaymentsExecuted.WithLabelValues(result).Inc()
	}

	return payment, nil
}

// GetPayment retrieves a payment outcome by ID.
func (uc *ExecutorUseCase) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return uc.paymentRepo.GetByID(ctx, id)
}

// ListPaymentsInput represents input for listing payment outcomes.
type ListPaymentsInput struct {
	ScheduledPaymentID string
	Limit              int
	Offset             int
}

// ListPayments lists the recorded outcomes of a scheduled payment.
func (uc *ExecutorUseCase) ListPayments(ctx context.Context, input ListPaymentsInput) ([]*domain.Payment, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.paymentRepo.ListByScheduledPayment(ctx, input.ScheduledPaymentID, limit, offset)
}
