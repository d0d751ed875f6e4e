package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

// RouteReturnCommandHandler picks the location for a returned line. It only
// reads; the putaway itself is recorded later as a Return stock movement.
type RouteReturnCommandHandler struct {
	uowFactory LocationUoWFactory
}

func NewRouteReturnCommandHandler(uowFactory LocationUoWFactory) RouteReturnCommandHandler {
	return RouteReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns services.ErrNoSuitableLocation when nothing in the pool can
// take the line.
func (h RouteReturnCommandHandler) Handle(ctx context.Context, cmd RouteReturnCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	candidates, err := uow.LocationRepository().FindCandidates(ctx, cmd.TenantID(), ports.LocationFilter{
		Statuses: []location.Status{location.Available},
		Zone:     cmd.Zone(),
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	locationID, err := services.NewReturnRouter().Route(
		cmd.TenantID(),
		cmd.ProductID(),
		cmd.Condition(),
		cmd.Quantity(),
		candidates,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return locationID, nil
}
