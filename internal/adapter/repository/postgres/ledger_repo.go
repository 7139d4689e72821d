package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// Totals sums every account balance in one query. Transfers conserve
// the sum, so it only moves when accounts are created.
func (r *LedgerRepository) Totals(ctx context.Context) (decimal.Decimal, int64, error) {
	var (
		total pgtype.Numeric
		count int64
	)

	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(balance), 0), COUNT(*)
		FROM accounts`,
	).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, err
	}

	return numericToDecimal(total), count, nil
}
