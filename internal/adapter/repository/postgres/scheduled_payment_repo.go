package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpetruk/schedpay/internal/domain"
)

// ScheduledPaymentRepository implements usecase.ScheduledPaymentRepository.
type ScheduledPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewScheduledPaymentRepository creates a new ScheduledPaymentRepository.
func NewScheduledPaymentRepository(pool *pgxpool.Pool) *ScheduledPaymentRepository {
	return &ScheduledPaymentRepository{pool: pool}
}

// Create stores a scheduled payment definition.
func (r *ScheduledPaymentRepository) Create(ctx context.Context, payment *domain.ScheduledPayment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO scheduled_payments (id, amount, day, from_account_id, to_account_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		payment.ID,
		decimalToNumeric(payment.Amount),
		payment.Day,
		payment.FromAccountID,
		payment.ToAccountID,
		timeToPgTimestamptz(payment.CreatedAt),
	)

	return err
}

// GetByID retrieves a definition by ID.
func (r *ScheduledPaymentRepository) GetByID(ctx context.Context, id string) (*domain.ScheduledPayment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, amount, day, from_account_id, to_account_id, created_at
		FROM scheduled_payments
		WHERE id = $1`,
		id,
	)

	return scanScheduledPayment(row)
}

// List lists definitions with pagination.
func (r *ScheduledPaymentRepository) List(ctx context.Context, limit, offset int) ([]*domain.ScheduledPayment, error) {
	return r.list(ctx, `
		SELECT id, amount, day, from_account_id, to_account_id, created_at
		FROM scheduled_payments
		ORDER BY created_at
		LIMIT $1 OFFSET $2`,
		int32(limit),
		int32(offset),
	)
}

// ListDueOnDay lists definitions scheduled for exactly the given day.
func (r *ScheduledPaymentRepository) ListDueOnDay(ctx context.Context, day int) ([]*domain.ScheduledPayment, error) {
	return r.list(ctx, `
		SELECT id, amount, day, from_account_id, to_account_id, created_at
		FROM scheduled_payments
		WHERE day = $1
		ORDER BY created_at`,
		day,
	)
}

// ListDueOnOrAfterDay lists definitions scheduled for the given day or
// any later day. Used on the last day of a month to catch days the
// month does not have.
func (r *ScheduledPaymentRepository) ListDueOnOrAfterDay(ctx context.Context, day int) ([]*domain.ScheduledPayment, error) {
	return r.list(ctx, `
		SELECT id, amount, day, from_account_id, to_account_id, created_at
		FROM scheduled_payments
		WHERE day >= $1
		ORDER BY created_at`,
		day,
	)
}

// Delete removes a definition.
func (r *ScheduledPaymentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM scheduled_payments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrScheduledPaymentNotFound
	}

	return nil
}

func (r *ScheduledPaymentRepository) list(ctx context.Context, query string, args ...any) ([]*domain.ScheduledPayment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*domain.ScheduledPayment

	for rows.Next() {
		payment, err := scanScheduledPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

func scanScheduledPayment(row pgx.Row) (*domain.ScheduledPayment, error) {
	var (
		payment   domain.ScheduledPayment
		amount    pgtype.Numeric
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&payment.ID, &amount, &payment.Day, &payment.FromAccountID, &payment.ToAccountID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrScheduledPaymentNotFound
		}

		return nil, err
	}

	payment.Amount = numericToDecimal(amount)
	payment.CreatedAt = createdAt.Time

	return &payment, nil
}
