package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCancelStockMovementCommandIsNotConstructed = errors.New(
	"CancelStockMovementCommand must be created via NewCancelStockMovementCommand constructor",
)

// CancelStockMovementCommand abandons a Pending movement. No quantity moves.
type CancelStockMovementCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.TenantID
	movementID kernel.UUID
	reason     string
	actor      kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelStockMovementCommand(
	tenantID kernel.TenantID,
	movementID kernel.UUID,
	reason string,
	actor kernel.UUID,
) (CancelStockMovementCommand, error) {
	reason = strings.TrimSpace(reason)

	var reasonErr error
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}

	if err := errors.Join(
		tenantID.Validate(),
		movementID.Validate(),
		reasonErr,
		actor.Validate(),
	); err != nil {
		return CancelStockMovementCommand{}, err
	}

	return CancelStockMovementCommand{
		tenantID:   tenantID,
		movementID: movementID,
		reason:     reason,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CancelStockMovementCommand) Validate() error {
	return c.guard.Validate(ErrCancelStockMovementCommandIsNotConstructed)
}

func (c CancelStockMovementCommand) TenantID() kernel.TenantID { return c.tenantID }
func (c CancelStockMovementCommand) MovementID() kernel.UUID   { return c.movementID }
func (c CancelStockMovementCommand) Reason() string            { return c.reason }
func (c CancelStockMovementCommand) Actor() kernel.UUID        { return c.actor }
