package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCreateStockMovementCommandIsNotConstructed = errors.New(
	"CreateStockMovementCommand must be created via NewCreateStockMovementCommand constructor",
)

// CreateStockMovementParams carries the raw request values for a movement.
type CreateStockMovementParams struct {
	TenantID              kernel.TenantID
	MovementID            kernel.UUID
	StockItemID           *kernel.UUID
	ProductID             kernel.UUID
	SourceLocationID      kernel.UUID
	DestinationLocationID kernel.UUID
	Quantity              int
	Type                  movement.Type
	Reason                movement.Reason
	InitiatedBy           kernel.UUID
}

// CreateStockMovementCommand opens a Pending movement between two locations
// of the same tenant. Quantities move only when the movement is completed.
// Distinct source and destination are enforced by the aggregate.
type CreateStockMovementCommand struct { //nolint:recvcheck //using for validation
	params CreateStockMovementParams

	guard guard.ConstructorGuard
}

func NewCreateStockMovementCommand(p CreateStockMovementParams) (CreateStockMovementCommand, error) {
	var quantityErr error
	if p.Quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", p.Quantity))
	}

	var stockItemErr error
	if p.StockItemID != nil {
		stockItemErr = p.StockItemID.Validate()
	}

	if err := errors.Join(
		p.TenantID.Validate(),
		p.MovementID.Validate(),
		stockItemErr,
		p.ProductID.Validate(),
		p.SourceLocationID.Validate(),
		p.DestinationLocationID.Validate(),
		quantityErr,
		p.Type.Validate(),
		p.Reason.Validate(),
		p.InitiatedBy.Validate(),
	); err != nil {
		return CreateStockMovementCommand{}, err
	}

	return CreateStockMovementCommand{
		params: p,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateStockMovementCommand) Validate() error {
	return c.guard.Validate(ErrCreateStockMovementCommandIsNotConstructed)
}

func (c CreateStockMovementCommand) TenantID() kernel.TenantID { return c.params.TenantID }

func (c CreateStockMovementCommand) MovementID() kernel.UUID { return c.params.MovementID }

func (c CreateStockMovementCommand) SourceLocationID() kernel.UUID { return c.params.SourceLocationID }

func (c CreateStockMovementCommand) DestinationLocationID() kernel.UUID {
	return c.params.DestinationLocationID
}

// MovementParams converts the command into aggregate construction parameters.
func (c CreateStockMovementCommand) MovementParams() movement.Params {
	return movement.Params{
		ID:                    c.params.MovementID,
		TenantID:              c.params.TenantID,
		StockItemID:           c.params.StockItemID,
		ProductID:             c.params.ProductID,
		SourceLocationID:      c.params.SourceLocationID,
		DestinationLocationID: c.params.DestinationLocationID,
		Quantity:              c.params.Quantity,
		Type:                  c.params.Type,
		Reason:                c.params.Reason,
		InitiatedBy:           c.params.InitiatedBy,
	}
}
