package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrDestinationHasNoCapacity = errors.New("destination location has no capacity for the movement")

// CompleteStockMovementCommandHandler completes a movement and moves its
// quantity from the source to the destination location in one transaction.
//
// The destination capacity is checked again at completion time because other
// movements may have filled it since this one was created.
type CompleteStockMovementCommandHandler struct {
	uowFactory UoWFactory
}

func NewCompleteStockMovementCommandHandler(uowFactory UoWFactory) CompleteStockMovementCommandHandler {
	return CompleteStockMovementCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CompleteStockMovementCommandHandler) Handle(ctx context.Context, cmd CompleteStockMovementCommand) error {
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

	locationRepo := uow.LocationRepository()
	movementRepo := uow.StockMovementRepository()

	mv, err := movementRepo.Get(ctx, cmd.TenantID(), cmd.MovementID())
	if err != nil {
		return err
	}

	source, err := locationRepo.Get(ctx, cmd.TenantID(), mv.SourceLocationID())
	if err != nil {
		return err
	}
	destination, err := locationRepo.Get(ctx, cmd.TenantID(), mv.DestinationLocationID())
	if err != nil {
		return err
	}

	quantity := decimal.NewFromInt(int64(mv.Quantity()))
	if !destination.HasCapacity(quantity) {
		return fmt.Errorf("%w: %s cannot take %s more", ErrDestinationHasNoCapacity, destination.Barcode(), quantity)
	}

	now := time.Now()
	event, err := mv.Complete(cmd.Actor(), now)
	if err != nil {
		return err
	}
	if err = source.RemoveStock(quantity, now); err != nil {
		return err
	}
	if err = destination.AddStock(quantity, now); err != nil {
		return err
	}

	if err = movementRepo.Update(ctx, mv); err != nil {
		return err
	}
	if err = locationRepo.Update(ctx, source); err != nil {
		return err
	}
	if err = locationRepo.Update(ctx, destination); err != nil {
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
