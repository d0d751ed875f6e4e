package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrCompleteStockMovementCommandIsNotConstructed = errors.New(
	"CompleteStockMovementCommand must be created via NewCompleteStockMovementCommand constructor",
)

// CompleteStockMovementCommand confirms that a Pending movement physically happened.
type CompleteStockMovementCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.TenantID
	movementID kernel.UUID
	actor      kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteStockMovementCommand(
	tenantID kernel.TenantID,
	movementID kernel.UUID,
	actor kernel.UUID,
) (CompleteStockMovementCommand, error) {
	if err := errors.Join(
		tenantID.Validate(),
		movementID.Validate(),
		actor.Validate(),
	); err != nil {
		return CompleteStockMovementCommand{}, err
	}

	return CompleteStockMovementCommand{
		tenantID:   tenantID,
		movementID: movementID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteStockMovementCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStockMovementCommandIsNotConstructed)
}

func (c CompleteStockMovementCommand) TenantID() kernel.TenantID { return c.tenantID }
func (c CompleteStockMovementCommand) MovementID() kernel.UUID   { return c.movementID }
func (c CompleteStockMovementCommand) Actor() kernel.UUID        { return c.actor }
