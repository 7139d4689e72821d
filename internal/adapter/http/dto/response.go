package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dpetruk/schedpay/internal/domain"
)

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	DefaultAccountID *string   `json:"default_account_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CustomerFromDomain converts domain customer to response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:               c.ID,
		Email:            c.Email,
		FullName:         c.FullName,
		DefaultAccountID: c.DefaultAccountID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// CustomersFromDomain converts domain customers to responses.
func CustomersFromDomain(customers []*domain.Customer) []*CustomerResponse {
	result := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		result[i] = CustomerFromDomain(c)
	}
	return result
}

// ListCustomersResponse represents a customer listing.
type ListCustomersResponse struct {
	Customers []*CustomerResponse `json:"customers"`
	Total     int64               `json:"total"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID         string          `json:"id"`
	Number     int64           `json:"number"`
	CustomerID string          `json:"customer_id"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:         a.ID,
		Number:     a.Number,
		CustomerID: a.CustomerID,
		Balance:    a.Balance,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse represents an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TransferResponse represents a transfer in API responses.
type TransferResponse struct {
	ID            string          `json:"id"`
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransferFromDomain converts domain transfer to response.
func TransferFromDomain(t *domain.Transfer) *TransferResponse {
	return &TransferResponse{
		ID:            t.ID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		CreatedAt:     t.CreatedAt,
	}
}

// TransfersFromDomain converts domain transfers to responses.
func TransfersFromDomain(transfers []*domain.Transfer) []*TransferResponse {
	result := make([]*TransferResponse, len(transfers))
	for i, t := range transfers {
		result[i] = TransferFromDomain(t)
	}
	return result
}

// ListTransfersResponse represents a transfer listing.
type ListTransfersResponse struct {
	Transfers []*TransferResponse `json:"transfers"`
	Total     int64               `json:"total"`
}

// ScheduledPaymentResponse represents a scheduled payment in API responses.
type ScheduledPaymentResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Day           int             `json:"day"`
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ScheduledPaymentFromDomain converts domain scheduled payment to response.
func ScheduledPaymentFromDomain(sp *domain.ScheduledPayment) *ScheduledPaymentResponse {
	return &ScheduledPaymentResponse{
		ID:            sp.ID,
		Amount:        sp.Amount,
		Day:           sp.Day,
		FromAccountID: sp.FromAccountID,
		ToAccountID:   sp.ToAccountID,
		CreatedAt:     sp.CreatedAt,
	}
}

// ScheduledPaymentsFromDomain converts domain scheduled payments to responses.
func ScheduledPaymentsFromDomain(payments []*domain.ScheduledPayment) []*ScheduledPaymentResponse {
	result := make([]*ScheduledPaymentResponse, len(payments))
	for i, sp := range payments {
		result[i] = ScheduledPaymentFromDomain(sp)
	}
	return result
}

// ListScheduledPaymentsResponse represents a scheduled payment listing.
type ListScheduledPaymentsResponse struct {
	ScheduledPayments []*ScheduledPaymentResponse `json:"scheduled_payments"`
	Total             int64                       `json:"total"`
}

// PaymentResponse represents a payment outcome in API responses.
type PaymentResponse struct {
	ID                 string    `json:"id"`
	Date               string    `json:"date"`
	IsSuccessful       bool      `json:"is_successful"`
	Reason             *string   `json:"reason,omitempty"`
	ScheduledPaymentID string    `json:"scheduled_payment_id"`
	TransferID         *string   `json:"transfer_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// PaymentFromDomain converts domain payment to response.
func PaymentFromDomain(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:                 p.ID,
		Date:               p.Date.Format("2006-01-02"),
		IsSuccessful:       p.IsSuccessful,
		Reason:             p.Reason,
		ScheduledPaymentID: p.ScheduledPaymentID,
		TransferID:         p.TransferID,
		CreatedAt:          p.CreatedAt,
	}
}

// PaymentsFromDomain converts domain payments to responses.
func PaymentsFromDomain(payments []*domain.Payment) []*PaymentResponse {
	result := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		result[i] = PaymentFromDomain(p)
	}
	return result
}

// ListPaymentsResponse represents a payment outcome listing.
type ListPaymentsResponse struct {
	Payments []*PaymentResponse `json:"payments"`
	Total    int64              `json:"total"`
}

// ConsistencyResponse represents the ledger consistency report.
type ConsistencyResponse struct {
	TotalBalance decimal.Decimal `json:"total_balance"`
	AccountCount int64           `json:"account_count"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
