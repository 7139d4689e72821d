package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a customer account that can hold a balance.
//
// Balance is only ever mutated through the transfer engine's atomic
// storage operations; nothing else may write it.
type Account struct {
	ID         string
	Number     int64
	CustomerID string
	Balance    decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate validates a new account.
func (a *Account) Validate() error {
	if a.Number <= 0 {
		return ErrInvalidAccountNumber
	}

	if a.Balance.IsNegative() {
		return ErrInvalidAmount
	}

	return nil
}
