package location

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCapacityIsNotConstructed = errors.New("Capacity must be created via NewCapacity")

// QuantityScale is the number of decimal places a stored quantity keeps.
const QuantityScale int32 = 4

// Capacity is the pair (current, maximum) of stock units held by a location.
// Both are non-negative and current never exceeds maximum. Capacity is
// immutable: Add and Remove return a new value.
type Capacity struct {
	current decimal.Decimal
	maximum decimal.Decimal
	guard   guard.ConstructorGuard
}

func NewCapacity(current, maximum decimal.Decimal) (Capacity, error) {
	if err := errors.Join(
		nonNegative("currentQuantity", current),
		nonNegative("maximumQuantity", maximum),
		CheckQuantityScale("currentQuantity", current),
		CheckQuantityScale("maximumQuantity", maximum),
	); err != nil {
		return Capacity{}, err
	}
	if current.GreaterThan(maximum) {
		return Capacity{}, errs.NewValueIsOutOfRangeError("currentQuantity", current, decimal.Zero, maximum)
	}

	return Capacity{
		current: current,
		maximum: maximum,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func nonNegative(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", v))
	}
	return nil
}

// CheckQuantityScale rejects v when it carries more than QuantityScale
// decimal places. Trailing zeros do not count.
func CheckQuantityScale(name string, v decimal.Decimal) error {
	if !v.Equal(v.Truncate(QuantityScale)) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s has more than %d decimal places", v, QuantityScale))
	}
	return nil
}

func positive(name string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is not greater than 0", v))
	}
	return nil
}

// Add returns the capacity after receiving q units. It fails, rather than
// clamping, when the result would exceed the maximum.
func (c Capacity) Add(q decimal.Decimal) (Capacity, error) {
	if err := errors.Join(positive("quantity", q), CheckQuantityScale("quantity", q)); err != nil {
		return c, err
	}
	if !c.HasRoomFor(q) {
		return c, errs.NewValueIsOutOfRangeError("quantity", q, decimal.Zero, c.Available())
	}
	return Capacity{current: c.current.Add(q), maximum: c.maximum, guard: c.guard}, nil
}

// Remove returns the capacity after issuing q units. It fails when q exceeds
// the current quantity.
func (c Capacity) Remove(q decimal.Decimal) (Capacity, error) {
	if err := errors.Join(positive("quantity", q), CheckQuantityScale("quantity", q)); err != nil {
		return c, err
	}
	if q.GreaterThan(c.current) {
		return c, errs.NewValueIsOutOfRangeError("quantity", q, decimal.Zero, c.current)
	}
	return Capacity{current: c.current.Sub(q), maximum: c.maximum, guard: c.guard}, nil
}

// HasRoomFor reports whether current + q <= maximum. Negative q never fits.
func (c Capacity) HasRoomFor(q decimal.Decimal) bool {
	if q.IsNegative() {
		return false
	}
	return c.current.Add(q).LessThanOrEqual(c.maximum)
}

func (c Capacity) IsEmpty() bool {
	return c.current.IsZero()
}

// Available is the remaining headroom, maximum - current.
func (c Capacity) Available() decimal.Decimal {
	return c.maximum.Sub(c.current)
}

func (c Capacity) Current() decimal.Decimal { return c.current }
func (c Capacity) Maximum() decimal.Decimal { return c.maximum }

func (c Capacity) Validate() error {
	return c.guard.Validate(ErrCapacityIsNotConstructed)
}
