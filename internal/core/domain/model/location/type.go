package location

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Type is the level of a location in the warehouse hierarchy.
// The zero value NoType means the hierarchy level was not specified.
type Type int

const (
	NoType Type = iota
	Warehouse
	Zone
	Aisle
	Rack
	Bin
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		NoType:    "",
		Warehouse: "Warehouse",
		Zone:      "Zone",
		Aisle:     "Aisle",
		Rack:      "Rack",
		Bin:       "Bin",
	}
}

// ParseType converts a type name; the empty string yields NoType.
func ParseType(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if name == s {
			return t, nil
		}
	}
	return NoType, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a location type", s))
}

func (t Type) Validate() error {
	if t < NoType || t > Bin {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid type", t))
	}
	return nil
}

func (t Type) String() string {
	return getTypeStrings()[t]
}
