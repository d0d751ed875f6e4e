package commands

import (
	"context"
	"time"
)

type CancelStockMovementCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelStockMovementCommandHandler(uowFactory UoWFactory) CancelStockMovementCommandHandler {
	return CancelStockMovementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels a Pending movement. Cancelling a completed or already
// cancelled movement fails with errs.ErrStatusTransitionIsInvalid.
func (h CancelStockMovementCommandHandler) Handle(ctx context.Context, cmd CancelStockMovementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	movementRepo := uow.StockMovementRepository()

	mv, err := movementRepo.Get(ctx, cmd.TenantID(), cmd.MovementID())
	if err != nil {
		return err
	}

	event, err := mv.Cancel(cmd.Actor(), cmd.Reason(), time.Now())
	if err != nil {
		return err
	}

	if err = movementRepo.Update(ctx, mv); err != nil {
		return err
	}

	if err = uow.EventOutbox().Append(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
