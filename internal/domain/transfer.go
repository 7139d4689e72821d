package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is the immutable record of one completed money movement
// between two accounts. It is created only as the terminal side-effect
// of a successful transfer and never updated afterwards.
type Transfer struct {
	ID            string
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	CreatedAt     time.Time
}

// Validate validates a transfer request.
func (t *Transfer) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.FromAccountID == t.ToAccountID {
		return ErrSameAccount
	}

	return nil
}
