package domain

import "time"

// ReasonInsufficientFunds is recorded when a scheduled payment fails
// because the sender balance cannot cover the amount.
const ReasonInsufficientFunds = "Insufficient funds."

// Payment is the immutable outcome record of one execution attempt of
// a scheduled payment on a given date. Reason and TransferID are
// mutually exclusive: a failed payment carries a reason and no
// transfer, a successful one carries a transfer and no reason.
type Payment struct {
	ID                 string
	Date               time.Time
	IsSuccessful       bool
	Reason             *string
	ScheduledPaymentID string
	TransferID         *string
	CreatedAt          time.Time
}

// NewSuccessfulPayment builds the outcome record for a scheduled
// payment whose transfer went through.
func NewSuccessfulPayment(id string, date time.Time, scheduledPaymentID, transferID string, createdAt time.Time) *Payment {
	return &Payment{
		ID:                 id,
		Date:               date,
		IsSuccessful:       true,
		ScheduledPaymentID: scheduledPaymentID,
		TransferID:         &transferID,
		CreatedAt:          createdAt,
	}
}

// NewFailedPayment builds the outcome record for a scheduled payment
// whose transfer was declined.
func NewFailedPayment(id string, date time.Time, scheduledPaymentID, reason string, createdAt time.Time) *Payment {
	return &Payment{
		ID:                 id,
		Date:               date,
		IsSuccessful:       false,
		Reason:             &reason,
		ScheduledPaymentID: scheduledPaymentID,
		CreatedAt:          createdAt,
	}
}

// Validate enforces the success/reason/transfer mutual exclusion.
// Records violating it are rejected before they can be persisted.
func (p *Payment) Validate() error {
	if p.IsSuccessful {
		if p.Reason != nil {
			return ErrUnexpectedReason
		}

		if p.TransferID == nil {
			return ErrMissingTransfer
		}

		return nil
	}

	if p.Reason == nil || *p.Reason == "" {
		return ErrMissingReason
	}

	if p.TransferID != nil {
		return ErrUnexpectedTransfer
	}

	return nil
}
