package splitter

import (
	"errors"
	"fmt"
)

// Validation failures. They are always wrapped in a *ValidationError.
var (
	ErrTooFewParticipants  = errors.New("at least 2 participants are required")
	ErrTooManyParticipants = fmt.Errorf("at most %d participants are supported", MaxParticipants)
	ErrBlankName           = errors.New("participant name is blank")
	ErrDuplicateName       = errors.New("participant name is registered twice")
	ErrUnknownParticipant  = errors.New("participant is not registered")
	ErrNonPositiveAmount   = errors.New("amount must be positive")
	ErrAmountPrecision     = errors.New("amount is finer than the currency minor unit")
	ErrCurrencyMismatch    = errors.New("amount currency does not match the ledger currency")
	ErrUnknownCurrency     = errors.New("unknown currency")
	ErrEmptyShare          = errors.New("expense must be shared by at least one participant")
	ErrAlreadyRegistered   = errors.New("participants are already registered")
	ErrNotRegistered       = errors.New("participants are not registered yet")
)

// ValidationError reports a rejected operation. Nothing was modified.
//
// Err may join several failures, use errors.Is to test for a given one.
type ValidationError struct {
	Op  string // Op is the rejected operation, e.g. "expense".
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Op, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// invalid wraps the joined errs into a *ValidationError, or returns nil if
// there is none.
func invalid(op string, errs ...error) error {
	err := errors.Join(errs...)
	if err == nil {
		return nil
	}
	return &ValidationError{Op: op, Err: err}
}
