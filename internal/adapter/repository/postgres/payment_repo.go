package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpetruk/schedpay/internal/domain"
)

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Create appends a payment outcome. Outcomes are never updated.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payments (id, date, is_successful, reason, scheduled_payment_id, transfer_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		payment.ID,
		pgtype.Date{Time: payment.Date, Valid: true},
		payment.IsSuccessful,
		payment.Reason,
		payment.ScheduledPaymentID,
		payment.TransferID,
		timeToPgTimestamptz(payment.CreatedAt),
	)

	return err
}

// GetByID retrieves a payment outcome by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, date, is_successful, reason, scheduled_payment_id, transfer_id, created_at
		FROM payments
		WHERE id = $1`,
		id,
	)

	return scanPayment(row)
}

// ListByScheduledPayment lists the outcomes recorded for a definition.
func (r *PaymentRepository) ListByScheduledPayment(ctx context.Context, scheduledPaymentID string, limit, offset int) ([]*domain.Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, date, is_successful, reason, scheduled_payment_id, transfer_id, created_at
		FROM payments
		WHERE scheduled_payment_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		scheduledPaymentID,
		int32(limit),
		int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.Payment

	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var (
		payment   domain.Payment
		date      pgtype.Date
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&payment.ID, &date, &payment.IsSuccessful, &payment.Reason, &payment.ScheduledPaymentID, &payment.TransferID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}

		return nil, err
	}

	payment.Date = date.Time
	payment.CreatedAt = createdAt.Time

	return &payment, nil
}
