package scheduling

import (
	"errors"
	"fmt"
)

// Code identifies a recoverable scheduling outcome. These are expected
// control-flow results, not failures: callers match on the code and re-prompt
// the customer.
type Code string

const (
	CodeSlotConflict      Code = "slotConflict"
	CodeClosedDay         Code = "closedDay"
	CodeEditWindowExpired Code = "editWindowExpired"
	CodeValidation        Code = "validationError"
)

// Error is a recoverable scheduling condition with a stable code.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSlotConflictError() error {
	return &Error{Code: CodeSlotConflict, Message: "this slot is no longer available, please pick another time"}
}

func NewClosedDayError(reason string) error {
	if reason == "" {
		reason = "the business is closed on this date"
	}
	return &Error{Code: CodeClosedDay, Message: reason}
}

func NewEditWindowExpiredError() error {
	return &Error{Code: CodeEditWindowExpired, Message: "appointments can only be changed on the day they were created"}
}

func NewValidationError(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

// IsCode reports whether err is a scheduling Error carrying the given code.
func IsCode(err error, code Code) bool {
	var schedErr *Error
	return errors.As(err, &schedErr) && schedErr.Code == code
}

// StoreError wraps a persistence failure. Unlike scheduling Errors it is not
// recoverable by re-prompting; it propagates to the caller unchanged and no
// partial state is committed.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err originates from a store failure.
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
