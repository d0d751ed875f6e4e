package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"
)

// CreateStockMovementCommandHandler checks that both ends of the movement
// exist in the tenant and persists the Pending movement.
type CreateStockMovementCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateStockMovementCommandHandler(uowFactory UoWFactory) CreateStockMovementCommandHandler {
	return CreateStockMovementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the movement id. A missing location yields errs.ErrObjectNotFound.
func (h CreateStockMovementCommandHandler) Handle(
	ctx context.Context,
	cmd CreateStockMovementCommand,
) (kernel.UUID, error) {
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

	locationRepo := uow.LocationRepository()
	movementRepo := uow.StockMovementRepository()

	if _, err := locationRepo.Get(ctx, cmd.TenantID(), cmd.SourceLocationID()); err != nil {
		return kernel.UUID{}, err
	}
	if _, err := locationRepo.Get(ctx, cmd.TenantID(), cmd.DestinationLocationID()); err != nil {
		return kernel.UUID{}, err
	}

	created, event, err := movement.NewStockMovement(cmd.MovementParams(), time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = movementRepo.Add(ctx, created); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.EventOutbox().Append(ctx, event); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return created.ID(), nil
}
