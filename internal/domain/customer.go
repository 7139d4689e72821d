package domain

import "time"

// Customer owns accounts. DefaultAccountID is nil until the customer
// picks one of their accounts as the default.
type Customer struct {
	ID               string
	Email            string
	FullName         string
	DefaultAccountID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate validates a customer record.
func (c *Customer) Validate() error {
	if err := ValidateEmail(c.Email); err != nil {
		return err
	}

	if err := ValidateFullName(c.FullName); err != nil {
		return err
	}

	return nil
}
