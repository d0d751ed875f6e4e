package movement

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Type classifies why stock is moved in warehouse process terms.
type Type int

const (
	UnknownType Type = iota
	Putaway
	Picking
	Transfer
	Replenishment
	Return
	Adjustment
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		Putaway:       "Putaway",
		Picking:       "Picking",
		Transfer:      "Transfer",
		Replenishment: "Replenishment",
		Return:        "Return",
		Adjustment:    "Adjustment",
	}
}

func ParseType(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if name == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("movementType", fmt.Errorf("%q is not a movement type", s))
}

func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("movementType", fmt.Errorf("%d is not a valid movement type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// Reason records the business cause of a movement.
type Reason int

const (
	UnknownReason Reason = iota
	ReasonPicking
	ReasonRestocking
	ReasonReorganization
	ReasonReturn
	ReasonDamage
	ReasonCorrection
	ReasonOther
)

func getReasonStrings() map[Reason]string {
	return map[Reason]string{
		ReasonPicking:        "Picking",
		ReasonRestocking:     "Restocking",
		ReasonReorganization: "Reorganization",
		ReasonReturn:         "Return",
		ReasonDamage:         "Damage",
		ReasonCorrection:     "Correction",
		ReasonOther:          "Other",
	}
}

func ParseReason(s string) (Reason, error) {
	for r, name := range getReasonStrings() {
		if name == s {
			return r, nil
		}
	}
	return UnknownReason, errs.NewValueIsInvalidErrorWithCause("reason", fmt.Errorf("%q is not a movement reason", s))
}

func (r Reason) Validate() error {
	if _, ok := getReasonStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("reason", fmt.Errorf("%d is not a valid movement reason", r))
	}
	return nil
}

func (r Reason) String() string {
	if str, ok := getReasonStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
