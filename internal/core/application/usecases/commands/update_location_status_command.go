package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/guard"
)

var ErrUpdateLocationStatusCommandIsNotConstructed = errors.New(
	"UpdateLocationStatusCommand must be created via NewUpdateLocationStatusCommand constructor",
)

// UpdateLocationStatusCommand requests a manual status change of a location.
// The requested status selects the state machine operation:
//
//	Blocked                          block (reason required)
//	Available, Occupied from Blocked unblock
//	Reserved                         reserve
//	Available, Occupied from Reserved release the reservation
//
// Unblock and release resolve the final status from the stored quantity.
type UpdateLocationStatusCommand struct { //nolint:recvcheck //using for validation
	tenantID   kernel.TenantID
	locationID kernel.UUID
	status     location.Status
	reason     string
	actor      kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateLocationStatusCommand(
	tenantID kernel.TenantID,
	locationID kernel.UUID,
	status location.Status,
	reason string,
	actor kernel.UUID,
) (UpdateLocationStatusCommand, error) {
	if err := errors.Join(
		tenantID.Validate(),
		locationID.Validate(),
		status.Validate(),
		actor.Validate(),
	); err != nil {
		return UpdateLocationStatusCommand{}, err
	}

	return UpdateLocationStatusCommand{
		tenantID:   tenantID,
		locationID: locationID,
		status:     status,
		reason:     strings.TrimSpace(reason),
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateLocationStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationStatusCommandIsNotConstructed)
}

func (c UpdateLocationStatusCommand) TenantID() kernel.TenantID { return c.tenantID }
func (c UpdateLocationStatusCommand) LocationID() kernel.UUID   { return c.locationID }
func (c UpdateLocationStatusCommand) Status() location.Status   { return c.status }
func (c UpdateLocationStatusCommand) Reason() string            { return c.reason }
func (c UpdateLocationStatusCommand) Actor() kernel.UUID        { return c.actor }
