package commands

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"
)

// UpdateLocationStatusCommandHandler applies a manual status change and
// records the matching location event.
type UpdateLocationStatusCommandHandler struct {
	uowFactory LocationUoWFactory
}

func NewUpdateLocationStatusCommandHandler(uowFactory LocationUoWFactory) UpdateLocationStatusCommandHandler {
	return UpdateLocationStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the status the location ended up in. A request the state
// machine does not allow fails with errs.ErrStatusTransitionIsInvalid.
func (h UpdateLocationStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateLocationStatusCommand,
) (location.Status, error) {
	if err := cmd.Validate(); err != nil {
		return location.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return location.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locationRepo := uow.LocationRepository()

	target, err := locationRepo.Get(ctx, cmd.TenantID(), cmd.LocationID())
	if err != nil {
		return location.Unknown, err
	}

	event, err := h.apply(target, cmd, time.Now())
	if err != nil {
		return location.Unknown, err
	}

	if err = locationRepo.Update(ctx, target); err != nil {
		return location.Unknown, err
	}

	if err = uow.EventOutbox().Append(ctx, event); err != nil {
		return location.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return location.Unknown, err
	}

	return target.Status(), nil
}

func (h UpdateLocationStatusCommandHandler) apply(
	l *location.Location,
	cmd UpdateLocationStatusCommand,
	at time.Time,
) (kernel.DomainEvent, error) {
	current := l.Status()
	requested := cmd.Status()

	switch {
	case requested == location.Blocked:
		return l.Block(cmd.Actor(), cmd.Reason(), at)
	case requested == location.Reserved:
		return l.Reserve(at)
	case current != location.Blocked && current != location.Reserved:
		return nil, errs.NewStatusTransitionIsInvalidError(
			"location",
			current.String(),
			fmt.Sprintf("set %s status on", requested),
		)
	}

	// Leaving Blocked or Reserved lands on the status the stock dictates.
	if freed := occupancyStatus(l); requested != freed {
		return nil, errs.NewStatusTransitionIsInvalidErrorWithCause(
			"location",
			current.String(),
			fmt.Sprintf("set %s status on", requested),
			fmt.Errorf("location would become %s", freed),
		)
	}

	if current == location.Blocked {
		return l.Unblock(cmd.Actor(), at)
	}
	return l.ReleaseReservation(at)
}

func occupancyStatus(l *location.Location) location.Status {
	if l.Capacity().IsEmpty() {
		return location.Available
	}
	return location.Occupied
}
