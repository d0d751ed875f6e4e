package commands

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRouteReturnCommandIsNotConstructed = errors.New(
	"RouteReturnCommand must be created via NewRouteReturnCommand constructor",
)

// RouteReturnCommand asks where one returned line should be put.
//
// Zone optionally narrows the candidates, for example to the quarantine or
// disposal zone of the warehouse; empty means every zone.
type RouteReturnCommand struct { //nolint:recvcheck //using for validation
	tenantID  kernel.TenantID
	productID kernel.UUID
	condition services.Condition
	quantity  decimal.Decimal
	zone      string

	guard guard.ConstructorGuard
}

func NewRouteReturnCommand(
	tenantID kernel.TenantID,
	productID kernel.UUID,
	condition services.Condition,
	quantity decimal.Decimal,
	zone string,
) (RouteReturnCommand, error) {
	var quantityErr error
	if !quantity.IsPositive() {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}

	if err := errors.Join(
		tenantID.Validate(),
		productID.Validate(),
		condition.Validate(),
		quantityErr,
		location.CheckQuantityScale("quantity", quantity),
	); err != nil {
		return RouteReturnCommand{}, err
	}

	return RouteReturnCommand{
		tenantID:  tenantID,
		productID: productID,
		condition: condition,
		quantity:  quantity,
		zone:      strings.ToUpper(strings.TrimSpace(zone)),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RouteReturnCommand) Validate() error {
	return c.guard.Validate(ErrRouteReturnCommandIsNotConstructed)
}

func (c RouteReturnCommand) TenantID() kernel.TenantID     { return c.tenantID }
func (c RouteReturnCommand) ProductID() kernel.UUID        { return c.productID }
func (c RouteReturnCommand) Condition() services.Condition { return c.condition }
func (c RouteReturnCommand) Quantity() decimal.Decimal     { return c.quantity }
func (c RouteReturnCommand) Zone() string                  { return c.zone }
