package services

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoLocationAvailable is the sentinel for FEFO allocation failures.
	ErrNoLocationAvailable = errors.New("no location available")

	// ErrNoSuitableLocation is the sentinel for return routing failures.
	ErrNoSuitableLocation = errors.New("no suitable location")
)

// NoLocationAvailableError names the first stock item of a batch that could
// not be placed. The whole batch fails; no partial assignment is returned.
type NoLocationAvailableError struct {
	StockItemID kernel.UUID
	Quantity    decimal.Decimal
}

func (e *NoLocationAvailableError) Error() string {
	return fmt.Sprintf("%s: stock item %s needs room for %s", ErrNoLocationAvailable, e.StockItemID, e.Quantity)
}

func (e *NoLocationAvailableError) Unwrap() error {
	return ErrNoLocationAvailable
}

// NoSuitableLocationError reports that no candidate can take a return line.
type NoSuitableLocationError struct {
	ProductID kernel.UUID
	Condition Condition
}

func (e *NoSuitableLocationError) Error() string {
	return fmt.Sprintf("%s: product %s in %s condition", ErrNoSuitableLocation, e.ProductID, e.Condition)
}

func (e *NoSuitableLocationError) Unwrap() error {
	return ErrNoSuitableLocation
}
