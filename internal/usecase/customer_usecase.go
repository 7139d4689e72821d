package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dpetruk/schedpay/internal/domain"
	"github.com/dpetruk/schedpay/internal/infrastructure/metrics"
)

// CustomerUseCase handles customer business logic.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	accountRepo  AccountRepository
	idGen        IDGenerator
	cache        Cache
	metrics      *metrics.Metrics
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(
	customerRepo CustomerRepository,
	accountRepo AccountRepository,
	idGen IDGenerator,
	cache Cache,
	metrics *metrics.Metrics,
) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		idGen:        idGen,
		cache:        cache,
		metrics:      metrics,
	}
}

// CreateCustomerInput represents input for creating a customer.
type CreateCustomerInput struct {
	Email    string
	FullName string
}

// CreateCustomer creates a new customer.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	now := time.Now().UTC()

	customer := &domain.Customer{
		ID:        uc.idGen.Generate(),
		Email:     input.Email,
		FullName:  input.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.CustomersCreated.Inc()
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID, consulting the cache first.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, customerCacheKey(id)); err == nil {
			var customer domain.Customer
			if err := json.Unmarshal([]byte(cached), &customer); err == nil {
				return &customer, nil
			}
		}
	}

	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(customer); err == nil {
			_ = uc.cache.Set(ctx, customerCacheKey(id), string(data), CustomerCacheTTL)
		}
	}

	return customer, nil
}

// ListCustomersInput represents input for listing customers.
type ListCustomersInput struct {
	Limit  int
	Offset int
}

// ListCustomers lists customers with pagination.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, input ListCustomersInput) ([]*domain.Customer, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.customerRepo.List(ctx, limit, offset)
}

// SetDefaultAccount marks one of the customer's accounts as their
// default. The account must belong to the customer.
func (uc *CustomerUseCase) SetDefaultAccount(ctx context.Context, customerID, accountID string) error {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if account.CustomerID != customerID {
		return domain.ErrAccountNotFound
	}

	if err := uc.customerRepo.SetDefaultAccount(ctx, customerID, accountID, time.Now().UTC()); err != nil {
		return err
	}

	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, customerCacheKey(customerID))
	}

	return nil
}

func customerCacheKey(id string) string {
	return "customer:" + id
}
