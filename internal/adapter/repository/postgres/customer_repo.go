package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpetruk/schedpay/internal/domain"
)

// CustomerRepository implements usecase.CustomerRepository.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Create creates a new customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO customers (id, email, full_name, default_account_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		customer.ID,
		customer.Email,
		customer.FullName,
		customer.DefaultAccountID,
		timeToPgTimestamptz(customer.CreatedAt),
		timeToPgTimestamptz(customer.UpdatedAt),
	)

	return err
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, full_name, default_account_id, created_at, updated_at
		FROM customers
		WHERE id = $1`,
		id,
	)

	return scanCustomer(row)
}

// List lists customers with pagination.
func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, email, full_name, default_account_id, created_at, updated_at
		FROM customers
		ORDER BY created_at
		LIMIT $1 OFFSET $2`,
		int32(limit),
		int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer

	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}

		customers = append(customers, customer)
	}

	return customers, rows.Err()
}

// SetDefaultAccount points the customer at one of their accounts.
func (r *CustomerRepository) SetDefaultAccount(ctx context.Context, customerID, accountID string, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE customers
		SET default_account_id = $2, updated_at = $3
		WHERE id = $1`,
		customerID,
		accountID,
		timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var (
		customer  domain.Customer
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&customer.ID, &customer.Email, &customer.FullName, &customer.DefaultAccountID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}

		return nil, err
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return &customer, nil
}
