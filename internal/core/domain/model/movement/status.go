package movement

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Pending
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a movement status", s))
}

func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

type operation string

const (
	opComplete operation = "complete"
	opCancel   operation = "cancel"
)

// transitions lists every allowed status × operation pair. Terminal statuses
// have no entry.
//
//nolint:gochecknoglobals // read-only lookup table
var transitions = map[Status]map[operation]Status{
	Pending: {
		opComplete: Completed,
		opCancel:   Cancelled,
	},
}

func (s Status) transition(op operation) (Status, error) {
	next, ok := transitions[s][op]
	if !ok {
		return s, errs.NewStatusTransitionIsInvalidError("stock movement", s.String(), string(op))
	}
	return next, nil
}

// Complete moves Pending to Completed.
func (s Status) Complete() (Status, error) {
	return s.transition(opComplete)
}

// Cancel moves Pending to Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.transition(opCancel)
}
