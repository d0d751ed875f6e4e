package services

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Condition is the state a returned product arrives in.
type Condition int

const (
	UnknownCondition Condition = iota
	Good
	Damaged
	Quarantine
	Expired
	WriteOff
)

func getConditionStrings() map[Condition]string {
	return map[Condition]string{
		Good:       "Good",
		Damaged:    "Damaged",
		Quarantine: "Quarantine",
		Expired:    "Expired",
		WriteOff:   "WriteOff",
	}
}

func ParseCondition(s string) (Condition, error) {
	for c, name := range getConditionStrings() {
		if name == s {
			return c, nil
		}
	}
	return UnknownCondition, errs.NewValueIsInvalidErrorWithCause("condition", fmt.Errorf("%q is not a product condition", s))
}

func (c Condition) Validate() error {
	if _, ok := getConditionStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("condition", fmt.Errorf("%d is not a valid condition", c))
	}
	return nil
}

func (c Condition) String() string {
	if s, ok := getConditionStrings()[c]; ok {
		return s
	}
	return "Unknown"
}

// ReturnRouter chooses where a returned line goes.
//
//   - Good: an Available location of type Bin, back into sellable stock
//   - Damaged, Quarantine: any Available location; the caller narrows the
//     candidates to quarantine locations
//   - Expired, WriteOff: any Available location; the caller narrows the
//     candidates to disposal locations
//
// Within the eligible pool the first location with capacity wins. Returns are
// not expiration-ranked, so unlike FEFOAssigner there is no proximity sort.
type ReturnRouter struct{}

func NewReturnRouter() ReturnRouter {
	return ReturnRouter{}
}

func (r ReturnRouter) Route(
	tenantID kernel.TenantID,
	productID kernel.UUID,
	condition Condition,
	quantity decimal.Decimal,
	locations []*location.Location,
) (kernel.UUID, error) {
	var quantityErr error
	if !quantity.IsPositive() {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}
	if err := errors.Join(
		tenantID.Validate(),
		productID.Validate(),
		condition.Validate(),
		quantityErr,
	); err != nil {
		return kernel.UUID{}, err
	}
	if err := validateLocations(tenantID, locations); err != nil {
		return kernel.UUID{}, err
	}

	eligible := r.eligibility(condition)
	for _, l := range locations {
		if eligible(l) && l.HasCapacity(quantity) {
			return l.ID(), nil
		}
	}

	return kernel.UUID{}, &NoSuitableLocationError{ProductID: productID, Condition: condition}
}

func (r ReturnRouter) eligibility(condition Condition) func(*location.Location) bool {
	switch condition {
	case Good:
		return func(l *location.Location) bool {
			return l.Type() == location.Bin && l.IsAvailable()
		}
	case Damaged, Quarantine, Expired, WriteOff:
		return (*location.Location).IsAvailable
	default:
		return func(*location.Location) bool { return false }
	}
}
