package settlement

import (
	"errors"
	"fmt"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/chris/arena-ledger/pkg/storage"
)

// Code classifies a settlement failure for the caller.
type Code string

const (
	NOT_FOUND       Code = "NOT_FOUND"
	INVALID_STATE   Code = "INVALID_STATE"
	VALIDATION      Code = "VALIDATION"
	PARTIAL_FAILURE Code = "PARTIAL_FAILURE"
)

// Error is a classified settlement failure.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any Error with the same code when the target carries no message,
// so errors.Is(err, ErrInvalidState) works for every invalid-state failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

var (
	ErrNotFound       = &Error{Code: NOT_FOUND}
	ErrInvalidState   = &Error{Code: INVALID_STATE}
	ErrValidation     = &Error{Code: VALIDATION}
	ErrPartialFailure = &Error{Code: PARTIAL_FAILURE}
)

func notFound(format string, args ...any) error {
	return &Error{Code: NOT_FOUND, Message: fmt.Sprintf(format, args...)}
}

func invalidState(format string, args ...any) error {
	return &Error{Code: INVALID_STATE, Message: fmt.Sprintf(format, args...)}
}

func validation(format string, args ...any) error {
	return &Error{Code: VALIDATION, Message: fmt.Sprintf(format, args...)}
}

func partialFailure(report *BulkReport) error {
	return &Error{
		Code:    PARTIAL_FAILURE,
		Message: fmt.Sprintf("%d of %d participants failed", report.Failed, report.Total()),
	}
}

// classify maps storage errors onto the settlement taxonomy. what names the
// entity for the message; anything unrecognised is wrapped and returned as is.
func classify(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return &Error{Code: NOT_FOUND, Message: what + " not found", Err: err}
	case errors.Is(err, storage.ErrConditionFailed):
		return &Error{Code: INVALID_STATE, Message: what + " changed concurrently", Err: err}
	case errors.Is(err, models.ErrBalanceOverflow):
		return &Error{Code: VALIDATION, Message: what + " would overflow the wallet balance", Err: err}
	}
	return fmt.Errorf("failed to settle %s: %w", what, err)
}

// ledgerError is classify for a failed ledger write, where a missing document
// can only be the wallet.
func ledgerError(err error, userID, what string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return &Error{Code: NOT_FOUND, Message: "wallet for user " + userID + " not found", Err: err}
	}
	return classify(err, what)
}
