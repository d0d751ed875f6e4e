package location

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status is the occupancy/availability state of a Location.
type Status int

const (
	// Unknown is the invalid zero value.
	Unknown Status = iota

	// Available locations are empty and accept stock.
	Available

	// Occupied locations hold stock.
	Occupied

	// Blocked locations accept no stock and are skipped by allocation.
	Blocked

	// Reserved locations are earmarked by an allocation and still accept stock.
	Reserved
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Occupied:  "Occupied",
		Blocked:   "Blocked",
		Reserved:  "Reserved",
	}
}

// ParseStatus converts the persisted/wire name back into a Status.
// Matching is exact and case-sensitive.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a location status", s))
}

func (s Status) Validate() error {
	if s < Available || s > Reserved {
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

// operation names a request to change a location's status. The string form
// is used in transition error messages ("cannot <op> location in <status> status").
type operation string

const (
	opBlock       operation = "block"
	opUnblock     operation = "unblock"
	opReserve     operation = "reserve"
	opRelease     operation = "release reservation of"
	opAddStock    operation = "add stock to"
	opRemoveStock operation = "remove stock from"
)

// resolver computes the target status. hasStock is the quantity state after
// the operation has been applied.
type resolver func(hasStock bool) Status

func to(target Status) resolver {
	return func(bool) Status { return target }
}

func byOccupancy(hasStock bool) Status {
	if hasStock {
		return Occupied
	}
	return Available
}

// transitions is the complete state machine: status × operation → target.
// Pairs missing from the table are invalid transitions.
//
//nolint:gochecknoglobals // read-only lookup table
var transitions = map[Status]map[operation]resolver{
	Available: {
		opBlock:       to(Blocked),
		opReserve:     to(Reserved),
		opAddStock:    to(Occupied),
		opRemoveStock: byOccupancy,
	},
	Occupied: {
		opBlock:       to(Blocked),
		opAddStock:    to(Occupied),
		opRemoveStock: byOccupancy,
	},
	Reserved: {
		opBlock:       to(Blocked),
		opRelease:     byOccupancy,
		opAddStock:    to(Occupied),
		opRemoveStock: to(Reserved),
	},
	Blocked: {
		opUnblock: byOccupancy,
	},
}

// allows reports whether op is defined from s without applying it.
func (s Status) allows(op operation) bool {
	_, ok := transitions[s][op]
	return ok
}

func (s Status) transition(op operation, hasStock bool) (Status, error) {
	resolve, ok := transitions[s][op]
	if !ok {
		return s, errs.NewStatusTransitionIsInvalidError("location", s.String(), string(op))
	}
	return resolve(hasStock), nil
}

// Block moves to Blocked from Available, Occupied or Reserved.
func (s Status) Block() (Status, error) {
	return s.transition(opBlock, false)
}

// Unblock leaves Blocked for Occupied when the location holds stock, Available otherwise.
func (s Status) Unblock(hasStock bool) (Status, error) {
	return s.transition(opUnblock, hasStock)
}

// Reserve moves from Available to Reserved.
func (s Status) Reserve() (Status, error) {
	return s.transition(opReserve, false)
}

// ReleaseReservation leaves Reserved for Occupied or Available depending on stock.
func (s Status) ReleaseReservation(hasStock bool) (Status, error) {
	return s.transition(opRelease, hasStock)
}

// CanReceiveStock reports whether stock may be added in this status.
func (s Status) CanReceiveStock() bool {
	return s.allows(opAddStock)
}
