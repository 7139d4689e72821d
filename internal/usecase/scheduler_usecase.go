package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dpetruk/schedpay/internal/domain"
	"github.com/dpetruk/schedpay/internal/infrastructure/metrics"
)

// SchedulerUseCase manages scheduled payment definitions and selects
// the ones due on a calendar date.
type SchedulerUseCase struct {
	scheduledPaymentRepo ScheduledPaymentRepository
	accountRepo          AccountRepository
	idGen                IDGenerator
	metrics              *metrics.Metrics
}

// NewSchedulerUseCase creates a new SchedulerUseCase.
func NewSchedulerUseCase(
	scheduledPaymentRepo ScheduledPaymentRepository,
	accountRepo AccountRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *SchedulerUseCase {
	return &SchedulerUseCase{
		scheduledPaymentRepo: scheduledPaymentRepo,
		accountRepo:          accountRepo,
		idGen:                idGen,
		metrics:              metrics,
	}
}

// DuePayments returns the scheduled payments due on forDate, defaulting
// to today when forDate is the zero time.
//
// On the last day of the month it selects every definition whose day is
// on or after that day, so a payment scheduled for the 30th or 31st
// still fires in February. Any other day selects exact matches only.
// The query is pure and idempotent; repeated execution is the
// executor's concern.
func (uc *SchedulerUseCase) DuePayments(ctx context.Context, forDate time.Time) ([]*domain.ScheduledPayment, error) {
	if forDate.IsZero() {
		forDate = time.Now().UTC()
	}

	day := forDate.Day()

	var (
		payments []*domain.ScheduledPayment
		err      error
	)

	if day == domain.DaysInMonth(forDate) {
		payments, err = uc.scheduledPaymentRepo.ListDueOnOrAfterDay(ctx, day)
	} else {
		payments, err = uc.scheduledPaymentRepo.ListDueOnDay(ctx, day)
	}

	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsDue.Observe(float64(len(payments)))
	}

	return payments, nil
}

// CreateScheduledPaymentInput represents input for creating a scheduled payment.
type CreateScheduledPaymentInput struct {
	Amount        decimal.Decimal
	Day           int
	FromAccountID string
	ToAccountID   string
}

// CreateScheduledPayment validates and stores a new definition.
// Self-transfers are rejected here, before the definition can ever be
// picked up by the scheduler.
func (uc *SchedulerUseCase) CreateScheduledPayment(ctx context.Context, input CreateScheduledPaymentInput) (*domain.ScheduledPayment, error) {
	payment := &domain.ScheduledPayment{
		ID:            uc.idGen.Generate(),
		Amount:        input.Amount,
		Day:           input.Day,
		FromAccountID: input.FromAccountID,
		ToAccountID:   input.ToAccountID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := payment.Validate(); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(payment.Amount); err != nil {
		return nil, err
	}

	// Both accounts must exist when the definition is created.
	if _, err := uc.accountRepo.GetByID(ctx, payment.FromAccountID); err != nil {
		return nil, err
	}

	if _, err := uc.accountRepo.GetByID(ctx, payment.ToAccountID); err != nil {
		return nil, err
	}

	if err := uc.scheduledPaymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// GetScheduledPayment retrieves a definition by ID.
func (uc *SchedulerUseCase) GetScheduledPayment(ctx context.Context, id string) (*domain.ScheduledPayment, error) {
	return uc.scheduledPaymentRepo.GetByID(ctx, id)
}

// ListScheduledPaymentsInput represents input for listing definitions.
type ListScheduledPaymentsInput struct {
	Limit  int
	Offset int
}

// ListScheduledPayments lists definitions with pagination.
func (uc *SchedulerUseCase) ListScheduledPayments(ctx context.Context, input ListScheduledPaymentsInput) ([]*domain.ScheduledPayment, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.scheduledPaymentRepo.List(ctx, limit, offset)
}

// DeleteScheduledPayment removes a definition together with its
// recorded payment history.
func (uc *SchedulerUseCase) DeleteScheduledPayment(ctx context.Context, id string) error {
	return uc.scheduledPaymentRepo.Delete(ctx, id)
}
