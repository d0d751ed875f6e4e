package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// CreateLocationCommandHandler persists a new location together with its
// LocationCreated event.
//
// Barcode and code are unique per tenant. A supplied barcode that is taken is
// a conflict. A generated barcode that is taken is regenerated once with the
// location id as uniqueness seed before the conflict is reported.
type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the created location. Uniqueness conflicts are
// reported as errs.ErrObjectAlreadyExists.
func (h CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) (kernel.UUID, error) {
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

	if cmd.Code() != "" {
		exists, err := locationRepo.ExistsByCode(ctx, cmd.TenantID(), cmd.Code())
		if err != nil {
			return kernel.UUID{}, err
		}
		if exists {
			return kernel.UUID{}, errs.NewObjectAlreadyExistsError("code", cmd.Code())
		}
	}

	barcode, err := h.resolveBarcode(ctx, locationRepo, cmd)
	if err != nil {
		return kernel.UUID{}, err
	}

	created, event, err := location.NewLocation(location.Params{
		ID:          cmd.LocationID(),
		TenantID:    cmd.TenantID(),
		Coordinates: cmd.Coordinates(),
		Barcode:     barcode,
		Capacity:    cmd.Capacity(),
		Code:        cmd.Code(),
		Name:        cmd.Name(),
		Type:        cmd.Type(),
		ParentID:    cmd.ParentID(),
		Description: cmd.Description(),
	}, time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = locationRepo.Add(ctx, created); err != nil {
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

func (h CreateLocationCommandHandler) resolveBarcode(
	ctx context.Context,
	repo ports.LocationRepository,
	cmd CreateLocationCommand,
) (location.Barcode, error) {
	if supplied := cmd.Barcode(); supplied != nil {
		exists, err := repo.ExistsByBarcode(ctx, cmd.TenantID(), *supplied)
		if err != nil {
			return location.Barcode{}, err
		}
		if exists {
			return location.Barcode{}, errs.NewObjectAlreadyExistsError("barcode", supplied.String())
		}
		return *supplied, nil
	}

	var lastTaken location.Barcode
	for _, seed := range []string{"", cmd.LocationID().String()} {
		barcode, err := generateBarcode(cmd, seed)
		if err != nil {
			return location.Barcode{}, err
		}

		exists, err := repo.ExistsByBarcode(ctx, cmd.TenantID(), barcode)
		if err != nil {
			return location.Barcode{}, err
		}
		if !exists {
			return barcode, nil
		}
		lastTaken = barcode
	}

	return location.Barcode{}, errs.NewObjectAlreadyExistsError("barcode", lastTaken.String())
}

func generateBarcode(cmd CreateLocationCommand, seed string) (location.Barcode, error) {
	if c := cmd.Coordinates(); c != nil {
		return location.GenerateBarcode(*c, seed)
	}
	return location.GenerateBarcodeFromCode(cmd.Code(), seed)
}
