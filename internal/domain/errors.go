package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound      = errors.New("account not found")
	ErrInsufficientBalance  = errors.New("insufficient balance on sender account")
	ErrInvalidAccount       = errors.New("recipient account no longer exists")
	ErrInvalidAccountNumber = errors.New("account number must be positive")

	// Transfer errors
	ErrSameAccount      = errors.New("cannot transfer to same account")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrTransferNotFound = errors.New("transfer not found")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")

	// Scheduled payment errors
	ErrScheduledPaymentNotFound = errors.New("scheduled payment not found")
	ErrInvalidDay               = errors.New("day of month must be between 1 and 31")

	// Payment errors
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrMissingReason      = errors.New("failed payment requires a reason")
	ErrUnexpectedTransfer = errors.New("failed payment must not reference a transfer")
	ErrUnexpectedReason   = errors.New("successful payment must not have a reason")
	ErrMissingTransfer    = errors.New("successful payment requires a transfer")
)
