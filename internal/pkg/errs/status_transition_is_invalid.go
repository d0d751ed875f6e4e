package errs

import (
	"errors"
	"fmt"
)

// ErrStatusTransitionIsInvalid is the sentinel for every StatusTransitionIsInvalidError.
var ErrStatusTransitionIsInvalid = errors.New("status transition is invalid")

// StatusTransitionIsInvalidError reports an operation that the current status
// of an aggregate does not allow. The aggregate is left unchanged.
type StatusTransitionIsInvalidError struct {
	ParamName string
	From      string
	Operation string
	Cause     error
}

// NewStatusTransitionIsInvalidError creates a StatusTransitionIsInvalidError without a cause.
func NewStatusTransitionIsInvalidError(paramName, from, operation string) *StatusTransitionIsInvalidError {
	return &StatusTransitionIsInvalidError{
		ParamName: paramName,
		From:      from,
		Operation: operation,
	}
}

// NewStatusTransitionIsInvalidErrorWithCause creates a StatusTransitionIsInvalidError wrapping cause.
func NewStatusTransitionIsInvalidErrorWithCause(
	paramName, from, operation string,
	cause error,
) *StatusTransitionIsInvalidError {
	return &StatusTransitionIsInvalidError{
		ParamName: paramName,
		From:      from,
		Operation: operation,
		Cause:     cause,
	}
}

func (e *StatusTransitionIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s %s in %s status",
		ErrStatusTransitionIsInvalid, e.Operation, e.ParamName, e.From)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *StatusTransitionIsInvalidError) Unwrap() error {
	return ErrStatusTransitionIsInvalid
}
