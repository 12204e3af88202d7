package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the order and invoice services.
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrIDExhausted        = errors.New("could not allocate a unique order id")
	ErrTotalMismatch      = errors.New("invoice total does not match the sum of item subtotals")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports invalid caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TransitionError reports a status change that is not a legal edge in the
// order lifecycle.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %q to %q", e.From, e.To)
}
