package location

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// MaxCoordinateLength is the upper bound of a coordinate component after sanitization.
const MaxCoordinateLength = 10

var ErrCoordinatesAreNotConstructed = errors.New("Coordinates must be created via NewCoordinates")

// Coordinates is the physical address of a slot: zone, aisle, rack and level.
//
// Each component is sanitized by dropping every character that is not an
// ASCII letter or digit and upper-casing the rest. A component that is empty
// or longer than MaxCoordinateLength after sanitization is rejected.
type Coordinates struct {
	zone  string
	aisle string
	rack  string
	level string

	guard guard.ConstructorGuard
}

// NewCoordinates sanitizes and validates the four address components.
// Failures of independent components are reported together.
//
// Example:
//
//	c, err := location.NewCoordinates("a", "01", "r-2", "3")
//	// c.String() == "A-01-R2-3"
func NewCoordinates(zone, aisle, rack, level string) (Coordinates, error) {
	c := Coordinates{guard: guard.NewConstructorGuard()}

	var err error
	if err = errors.Join(
		setComponent(&c.zone, "zone", zone),
		setComponent(&c.aisle, "aisle", aisle),
		setComponent(&c.rack, "rack", rack),
		setComponent(&c.level, "level", level),
	); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

func setComponent(dst *string, name, raw string) error {
	value := sanitize(raw)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	if len(value) > MaxCoordinateLength {
		return errs.NewValueIsOutOfRangeError(name, value, 1, MaxCoordinateLength)
	}
	*dst = value
	return nil
}

// sanitize keeps ASCII letters and digits only and upper-cases the result.
func sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c Coordinates) Zone() string  { return c.zone }
func (c Coordinates) Aisle() string { return c.aisle }
func (c Coordinates) Rack() string  { return c.rack }
func (c Coordinates) Level() string { return c.level }

// String renders the address as ZONE-AISLE-RACK-LEVEL.
func (c Coordinates) String() string {
	return fmt.Sprintf("%s-%s-%s-%s", c.zone, c.aisle, c.rack, c.level)
}

func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.zone == other.zone &&
		c.aisle == other.aisle &&
		c.rack == other.rack &&
		c.level == other.level
}

func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}
