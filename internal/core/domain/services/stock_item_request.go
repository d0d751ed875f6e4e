package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrStockItemRequestIsNotConstructed = errors.New("StockItemRequest must be created via NewStockItemRequest")

// StockItemRequest asks for a location for one stock item. It is an input
// value only and is never persisted.
type StockItemRequest struct {
	stockItemID    kernel.UUID
	quantity       decimal.Decimal
	expirationDate *time.Time
	classification string

	guard guard.ConstructorGuard
}

// NewStockItemRequest validates a request. A nil expiration date marks a
// non-perishable item.
func NewStockItemRequest(
	stockItemID kernel.UUID,
	quantity decimal.Decimal,
	expirationDate *time.Time,
	classification string,
) (StockItemRequest, error) {
	var quantityErr error
	if !quantity.IsPositive() {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}
	if err := errors.Join(
		stockItemID.Validate(),
		quantityErr,
		location.CheckQuantityScale("quantity", quantity),
	); err != nil {
		return StockItemRequest{}, err
	}

	r := StockItemRequest{
		stockItemID:    stockItemID,
		quantity:       quantity,
		classification: strings.TrimSpace(classification),
		guard:          guard.NewConstructorGuard(),
	}
	if expirationDate != nil {
		exp := expirationDate.UTC()
		r.expirationDate = &exp
	}
	return r, nil
}

func (r StockItemRequest) StockItemID() kernel.UUID   { return r.stockItemID }
func (r StockItemRequest) Quantity() decimal.Decimal  { return r.quantity }
func (r StockItemRequest) ExpirationDate() *time.Time { return r.expirationDate }
func (r StockItemRequest) Classification() string     { return r.classification }

func (r StockItemRequest) Validate() error {
	return r.guard.Validate(ErrStockItemRequestIsNotConstructed)
}

// expiresBefore orders perishable items by date and puts non-perishable items last.
func (r StockItemRequest) expiresBefore(other StockItemRequest) bool {
	switch {
	case r.expirationDate == nil:
		return false
	case other.expirationDate == nil:
		return true
	default:
		return r.expirationDate.Before(*other.expirationDate)
	}
}
