package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dpetruk/schedpay/internal/domain"
	"github.com/dpetruk/schedpay/internal/usecase"
	"github.com/dpetruk/schedpay/internal/usecase/mocks"
)

func TestCustomerUseCase_CreateCustomer(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateCustomerInput
		expectError error
	}{
		{
			name: "valid customer",
			input: usecase.CreateCustomerInput{
				Email:    "alex@example.com",
				FullName: "Alex Doe",
			},
		},
		{
			name: "invalid email",
			input: usecase.CreateCustomerInput{
				Email:    "not-an-email",
				FullName: "Alex Doe",
			},
			expectError: domain.ErrInvalidEmail,
		},
		{
			name: "empty full name",
			input: usecase.CreateCustomerInput{
				Email:    "alex@example.com",
				FullName: "",
			},
			expectError: domain.ErrInvalidFullName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customerRepo := mocks.NewMockCustomerRepository()
			uc := usecase.NewCustomerUseCase(customerRepo, mocks.NewMockAccountRepository(), mocks.NewMockIDGenerator(), nil, nil)

			customer, err := uc.CreateCustomer(context.Background(), tt.input)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected error %v, got %v", tt.expectError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if customer.ID == "" {
				t.Error("expected generated ID")
			}
			if customer.Email != tt.input.Email {
				t.Errorf("expected email %s, got %s", tt.input.Email, customer.Email)
			}
		})
	}
}

func TestCustomerUseCase_GetCustomer_CachesResult(t *testing.T) {
	customerRepo := mocks.NewMockCustomerRepository()
	cache := mocks.NewMockCache()
	uc := usecase.NewCustomerUseCase(customerRepo, mocks.NewMockAccountRepository(), mocks.NewMockIDGenerator(), cache, nil)

	created, err := uc.CreateCustomer(context.Background(), usecase.CreateCustomerInput{
		Email:    "alex@example.com",
		FullName: "Alex Doe",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repoCalls := 0
	customerRepo.GetByIDFunc = func(ctx context.Context, id string) (*domain.Customer, error) {
		repoCalls++
		return created, nil
	}

	for i := 0; i < 3; i++ {
		got, err := uc.GetCustomer(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Email != created.Email {
			t.Errorf("expected email %s, got %s", created.Email, got.Email)
		}
	}

	if repoCalls != 1 {
		t.Errorf("expected 1 repository call, got %d", repoCalls)
	}
}

func TestCustomerUseCase_GetCustomer_NotFound(t *testing.T) {
	uc := usecase.NewCustomerUseCase(mocks.NewMockCustomerRepository(), mocks.NewMockAccountRepository(), mocks.NewMockIDGenerator(), nil, nil)

	_, err := uc.GetCustomer(context.Background(), "missing")
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerUseCase_SetDefaultAccount(t *testing.T) {
	customerRepo := mocks.NewMockCustomerRepository()
	accRepo := mocks.NewMockAccountRepository()
	cache := mocks.NewMockCache()
	uc := usecase.NewCustomerUseCase(customerRepo, accRepo, mocks.NewMockIDGenerator(), cache, nil)

	customer, err := uc.CreateCustomer(context.Background(), usecase.CreateCustomerInput{
		Email:    "alex@example.com",
		FullName: "Alex Doe",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := accRepo.Create(context.Background(), &domain.Account{
		ID:         "acc-1",
		Number:     1,
		CustomerID: customer.ID,
		Balance:    decimal.Zero,
	}); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	if err := accRepo.Create(context.Background(), &domain.Account{
		ID:         "acc-other",
		Number:     2,
		CustomerID: "someone-else",
		Balance:    decimal.Zero,
	}); err != nil {
		t.Fatalf("seed account: %v", err)
	}

	t.Run("own account", func(t *testing.T) {
		if err := uc.SetDefaultAccount(context.Background(), customer.ID, "acc-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := uc.GetCustomer(context.Background(), customer.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DefaultAccountID == nil || *got.DefaultAccountID != "acc-1" {
			t.Errorf("expected default account acc-1, got %v", got.DefaultAccountID)
		}
	})

	t.Run("account of another customer", func(t *testing.T) {
		err := uc.SetDefaultAccount(context.Background(), customer.ID, "acc-other")
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("missing account", func(t *testing.T) {
		err := uc.SetDefaultAccount(context.Background(), customer.ID, "missing")
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})
}
