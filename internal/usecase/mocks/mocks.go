package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dpetruk/schedpay/internal/domain"
	"github.com/dpetruk/schedpay/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
// The default behavior keeps accounts in memory behind a mutex, so the
// conditional debit is atomic the way the real store's is.
type MockAccountRepository struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account

	CreateFunc            func(ctx context.Context, account *domain.Account) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Account, error)
	GetByNumberFunc       func(ctx context.Context, number int64) (*domain.Account, error)
	DebitIfSufficientFunc func(ctx context.Context, tx usecase.Transaction, id string, amount decimal.Decimal, updatedAt time.Time) (bool, error)
	CreditFunc            func(ctx context.Context, tx usecase.Transaction, id string, amount decimal.Decimal, updatedAt time.Time) (bool, error)
	ListFunc              func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByNumber(ctx context.Context, number int64) (*domain.Account, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, acc := range m.accounts {
		if acc.Number == number {
			return acc, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) DebitIfSufficient(ctx context.Context, tx usecase.Transaction, id string, amount decimal.Decimal, updatedAt time.Time) (bool, error) {
	if m.DebitIfSufficientFunc != nil {
		return m.DebitIfSufficientFunc(ctx, tx, id, amount, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok || acc.Balance.LessThan(amount) {
		return false, nil
	}
	acc.Balance = acc.Balance.Sub(amount)
	acc.UpdatedAt = updatedAt
	return true, nil
}

func (m *MockAccountRepository) Credit(ctx context.Context, tx usecase.Transaction, id string, amount decimal.Decimal, updatedAt time.Time) (bool, error) {
	if m.CreditFunc != nil {
		return m.CreditFunc(ctx, tx, id, amount, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return false, nil
	}
	acc.Balance = acc.Balance.Add(amount)
	acc.UpdatedAt = updatedAt
	return true, nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// Balance returns the current balance of an account, for assertions.
func (m *MockAccountRepository) Balance(id string) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		return acc.Balance
	}
	return decimal.Zero
}

// TotalBalance sums all balances, for conservation assertions.
func (m *MockAccountRepository) TotalBalance() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	for _, acc := range m.accounts {
		total = total.Add(acc.Balance)
	}
	return total
}

// MockTransferRepository is a mock implementation of TransferRepository.
type MockTransferRepository struct {
	mu        sync.Mutex
	transfers map[string]*domain.Transfer

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, transfer *domain.Transfer) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Transfer, error)
	ListByAccountFunc func(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transfer, error)
}

func NewMockTransferRepository() *MockTransferRepository {
	return &MockTransferRepository{
		transfers: make(map[string]*domain.Transfer),
	}
}

func (m *MockTransferRepository) Create(ctx context.Context, tx usecase.Transaction, transfer *domain.Transfer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, transfer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transfers[transfer.ID] = transfer
	return nil
}

func (m *MockTransferRepository) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.transfers[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTransferNotFound
}

func (m *MockTransferRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transfer, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var transfers []*domain.Transfer
	for _, t := range m.transfers {
		if t.FromAccountID == accountID || t.ToAccountID == accountID {
			transfers = append(transfers, t)
		}
	}
	return transfers, nil
}

// Count returns the number of stored transfers.
func (m *MockTransferRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.transfers)
}

// MockScheduledPaymentRepository is a mock implementation of ScheduledPaymentRepository.
type MockScheduledPaymentRepository struct {
	mu       sync.Mutex
	payments map[string]*domain.ScheduledPayment

	CreateFunc              func(ctx context.Context, payment *domain.ScheduledPayment) error
	GetByIDFunc             func(ctx context.Context, id string) (*domain.ScheduledPayment, error)
	ListFunc                func(ctx context.Context, limit, offset int) ([]*domain.ScheduledPayment, error)
	ListDueOnDayFunc        func(ctx context.Context, day int) ([]*domain.ScheduledPayment, error)
	ListDueOnOrAfterDayFunc func(ctx context.Context, day int) ([]*domain.ScheduledPayment, error)
	DeleteFunc              func(ctx context.Context, id string) error
}

func NewMockScheduledPaymentRepository() *MockScheduledPaymentRepository {
	return &MockScheduledPaymentRepository{
		payments: make(map[string]*domain.ScheduledPayment),
	}
}

func (m *MockScheduledPaymentRepository) Create(ctx context.Context, payment *domain.ScheduledPayment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
	return nil
}

func (m *MockScheduledPaymentRepository) GetByID(ctx context.Context, id string) (*domain.ScheduledPayment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return nil, domain.ErrScheduledPaymentNotFound
}

func (m *MockScheduledPaymentRepository) List(ctx context.Context, limit, offset int) ([]*domain.ScheduledPayment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var payments []*domain.ScheduledPayment
	for _, p := range m.payments {
		payments = append(payments, p)
	}
	return payments, nil
}

func (m *MockScheduledPaymentRepository) ListDueOnDay(ctx context.Context, day int) ([]*domain.ScheduledPayment, error) {
	if m.ListDueOnDayFunc != nil {
		return m.ListDueOnDayFunc(ctx, day)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var payments []*domain.ScheduledPayment
	for _, p := range m.payments {
		if p.Day == day {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (m *MockScheduledPaymentRepository) ListDueOnOrAfterDay(ctx context.Context, day int) ([]*domain.ScheduledPayment, error) {
	if m.ListDueOnOrAfterDayFunc != nil {
		return m.ListDueOnOrAfterDayFunc(ctx, day)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var payments []*domain.ScheduledPayment
	for _, p := range m.payments {
		if p.Day >= day {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (m *MockScheduledPaymentRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[id]; !ok {
		return domain.ErrScheduledPaymentNotFound
	}
	delete(m.payments, id)
	return nil
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.Mutex
	payments map[string]*domain.Payment

	CreateFunc                 func(ctx context.Context, payment *domain.Payment) error
	GetByIDFunc                func(ctx context.Context, id string) (*domain.Payment, error)
	ListByScheduledPaymentFunc func(ctx context.Context, scheduledPaymentID string, limit, offset int) ([]*domain.Payment, error)
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]*domain.Payment),
	}
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *MockPaymentRepository) ListByScheduledPayment(ctx context.Context, scheduledPaymentID string, limit, offset int) ([]*domain.Payment, error) {
	if m.ListByScheduledPaymentFunc != nil {
		return m.ListByScheduledPaymentFunc(ctx, scheduledPaymentID, limit, offset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var payments []*domain.Payment
	for _, p := range m.payments {
		if p.ScheduledPaymentID == scheduledPaymentID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

// Count returns the number of stored payments.
func (m *MockPaymentRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.payments)
}

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.Mutex
	customers map[string]*domain.Customer

	CreateFunc            func(ctx context.Context, customer *domain.Customer) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Customer, error)
	ListFunc              func(ctx context.Context, limit, offset int) ([]*domain.Customer, error)
	SetDefaultAccountFunc func(ctx context.Context, customerID, accountID string, updatedAt time.Time) error
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[customer.ID] = customer
	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.customers[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var customers []*domain.Customer
	for _, c := range m.customers {
		customers = append(customers, c)
	}
	return customers, nil
}

func (m *MockCustomerRepository) SetDefaultAccount(ctx context.Context, customerID, accountID string, updatedAt time.Time) error {
	if m.SetDefaultAccountFunc != nil {
		return m.SetDefaultAccountFunc(ctx, customerID, accountID, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[customerID]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	c.DefaultAccountID = &accountID
	c.UpdatedAt = updatedAt
	return nil
}

// MockLedgerRepository is a mock implementation of LedgerRepository.
type MockLedgerRepository struct {
	TotalsFunc func(ctx context.Context) (decimal.Decimal, int64, error)
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{}
}

func (m *MockLedgerRepository) Totals(ctx context.Context) (decimal.Decimal, int64, error) {
	if m.TotalsFunc != nil {
		return m.TotalsFunc(ctx)
	}
	return decimal.Zero, 0, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("generated-id-%d", m.counter)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu     sync.Mutex
	values map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		values: make(map[string]string),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("cache miss: %s", key)
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
