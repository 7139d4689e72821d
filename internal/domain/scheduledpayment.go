package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduledPayment is a recurring transfer definition triggered by a
// day of the month. Definitions scheduled for days 29-31 still fire in
// shorter months, on the month's last day.
type ScheduledPayment struct {
	ID            string
	Amount        decimal.Decimal
	Day           int
	FromAccountID string
	ToAccountID   string
	CreatedAt     time.Time
}

// Validate validates a scheduled payment definition.
func (p *ScheduledPayment) Validate() error {
	if p.FromAccountID == p.ToAccountID {
		return ErrSameAccount
	}

	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if p.Day < 1 || p.Day > 31 {
		return ErrInvalidDay
	}

	return nil
}

// DueOn reports whether the payment fires on the given date. On the
// last day of the month every definition scheduled for that day or a
// later, nonexistent day fires too, so a day-31 payment is never
// silently skipped in a 30-day month or in February.
func (p *ScheduledPayment) DueOn(date time.Time) bool {
	if date.Day() == DaysInMonth(date) {
		return p.Day >= date.Day()
	}

	return p.Day == date.Day()
}

// DaysInMonth returns the number of days in date's month.
func DaysInMonth(date time.Time) int {
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location()).Day()
}
