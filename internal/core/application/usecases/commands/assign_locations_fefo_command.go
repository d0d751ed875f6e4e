package commands

import (
	"errors"
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrAssignLocationsFEFOCommandIsNotConstructed = errors.New(
	"AssignLocationsFEFOCommand must be created via NewAssignLocationsFEFOCommand constructor",
)

// AssignLocationsFEFOCommand asks for a putaway location for every stock item
// of a batch. Items expiring first are placed closest to the dock.
//
// Example:
//
//	item, _ := services.NewStockItemRequest(stockItemID, decimal.NewFromInt(5), &expiresAt, "")
//	cmd, err := NewAssignLocationsFEFOCommand(tenantID, []services.StockItemRequest{item})
//	if err != nil {
//	    return err
//	}
//	assignments, err := handler.Handle(ctx, cmd)
type AssignLocationsFEFOCommand struct { //nolint:recvcheck //using for validation
	tenantID kernel.TenantID
	items    []services.StockItemRequest

	guard guard.ConstructorGuard
}

func NewAssignLocationsFEFOCommand(
	tenantID kernel.TenantID,
	items []services.StockItemRequest,
) (AssignLocationsFEFOCommand, error) {
	var itemsErr error
	if len(items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("stockItems")
	}

	itemErrs := make([]error, 0, len(items))
	for _, item := range items {
		itemErrs = append(itemErrs, item.Validate())
	}

	if err := errors.Join(
		tenantID.Validate(),
		itemsErr,
		errors.Join(itemErrs...),
	); err != nil {
		return AssignLocationsFEFOCommand{}, err
	}

	return AssignLocationsFEFOCommand{
		tenantID: tenantID,
		items:    slices.Clone(items),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignLocationsFEFOCommand) Validate() error {
	return c.guard.Validate(ErrAssignLocationsFEFOCommandIsNotConstructed)
}

func (c AssignLocationsFEFOCommand) TenantID() kernel.TenantID { return c.tenantID }

// Items returns a copy of the requested stock items in request order.
func (c AssignLocationsFEFOCommand) Items() []services.StockItemRequest {
	return slices.Clone(c.items)
}
