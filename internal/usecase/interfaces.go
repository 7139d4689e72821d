package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dpetruk/schedpay/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByNumber(ctx context.Context, number int64) (*domain.Account, error)
	// DebitIfSufficient atomically decrements the balance by amount,
	// but only when the current balance covers it. Returns false when
	// it does not, or when the account no longer exists. This is a
	// single conditional update, never a read-then-write pair.
	DebitIfSufficient(ctx context.Context, tx Transaction, id string, amount decimal.Decimal, updatedAt time.Time) (bool, error)
	// Credit atomically increments the balance. Returns false when the
	// account no longer exists.
	Credit(ctx context.Context, tx Transaction, id string, amount decimal.Decimal, updatedAt time.Time) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// TransferRepository defines data access for transfer records.
type TransferRepository interface {
	Create(ctx context.Context, tx Transaction, transfer *domain.Transfer) error
	GetByID(ctx context.Context, id string) (*domain.Transfer, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transfer, error)
}

// ScheduledPaymentRepository defines data access for scheduled payment definitions.
type ScheduledPaymentRepository interface {
	Create(ctx context.Context, payment *domain.ScheduledPayment) error
	GetByID(ctx context.Context, id string) (*domain.ScheduledPayment, error)
	List(ctx context.Context, limit, offset int) ([]*domain.ScheduledPayment, error)
	ListDueOnDay(ctx context.Context, day int) ([]*domain.ScheduledPayment, error)
	ListDueOnOrAfterDay(ctx context.Context, day int) ([]*domain.ScheduledPayment, error)
	Delete(ctx context.Context, id string) error
}

// PaymentRepository defines data access for payment outcome records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByScheduledPayment(ctx context.Context, scheduledPaymentID string, limit, offset int) ([]*domain.Payment, error)
}

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Customer, error)
	SetDefaultAccount(ctx context.Context, customerID, accountID string, updatedAt time.Time) error
}

// LedgerRepository defines data access for ledger-wide operations.
type LedgerRepository interface {
	// Totals returns the sum of all account balances and the number of
	// accounts. The sum is invariant under any sequence of transfers.
	Totals(ctx context.Context) (totalBalance decimal.Decimal, accountCount int64, err error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
