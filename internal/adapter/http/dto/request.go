package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dpetruk/schedpay/internal/usecase"
)

// CreateCustomerRequest represents a request to create a customer.
type CreateCustomerRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCustomerRequest) ToUseCaseInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Email:    r.Email,
		FullName: r.FullName,
	}
}

// SetDefaultAccountRequest represents a request to set a customer's default account.
type SetDefaultAccountRequest struct {
	AccountID string `json:"account_id"`
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Number         int64           `json:"number"`
	CustomerID     string          `json:"customer_id"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Number:         r.Number,
		CustomerID:     r.CustomerID,
		InitialBalance: r.InitialBalance,
	}
}

// CreateTransferRequest represents a request to execute a transfer.
type CreateTransferRequest struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() usecase.ExecuteTransferInput {
	return usecase.ExecuteTransferInput{
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        r.Amount,
	}
}

// CreateScheduledPaymentRequest represents a request to create a scheduled payment.
type CreateScheduledPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Day           int             `json:"day"`
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateScheduledPaymentRequest) ToUseCaseInput() usecase.CreateScheduledPaymentInput {
	return usecase.CreateScheduledPaymentInput{
		Amount:        r.Amount,
		Day:           r.Day,
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
	}
}

// RunPaymentsRequest represents a request to execute the payments due
// on a date. Date is optional and defaults to today.
type RunPaymentsRequest struct {
	Date string `json:"date,omitempty"`
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
