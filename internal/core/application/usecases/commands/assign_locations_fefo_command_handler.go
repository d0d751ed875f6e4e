package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

// AssignLocationsFEFOCommandHandler loads the tenant's Available and Reserved
// locations, runs the FEFO assigner over them and reserves every assigned
// location that was still Available. Either the whole batch is assigned or
// nothing is persisted.
//
// Example:
//
//	handler := NewAssignLocationsFEFOCommandHandler(uowFactory)
//	assignments, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoLocationAvailable):
//	    log.Println("batch does not fit")
//	case err != nil:
//	    log.Printf("assignment failed: %v", err)
//	default:
//	    for _, a := range assignments.InOrder() {
//	        log.Printf("%s -> %s", a.StockItemID, a.LocationID)
//	    }
//	}
type AssignLocationsFEFOCommandHandler struct {
	uowFactory LocationUoWFactory
}

func NewAssignLocationsFEFOCommandHandler(uowFactory LocationUoWFactory) AssignLocationsFEFOCommandHandler {
	return AssignLocationsFEFOCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignLocationsFEFOCommandHandler) Handle(
	ctx context.Context,
	cmd AssignLocationsFEFOCommand,
) (services.Assignments, error) {
	if err := cmd.Validate(); err != nil {
		return services.Assignments{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Assignments{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locationRepo := uow.LocationRepository()

	candidates, err := locationRepo.FindCandidates(ctx, cmd.TenantID(), ports.LocationFilter{
		Statuses: []location.Status{location.Available, location.Reserved},
	})
	if err != nil {
		return services.Assignments{}, err
	}

	assignments, err := services.NewFEFOAssigner().Assign(cmd.TenantID(), cmd.Items(), candidates)
	if err != nil {
		return services.Assignments{}, err
	}

	byID := make(map[kernel.UUID]*location.Location, len(candidates))
	for _, c := range candidates {
		byID[c.ID()] = c
	}

	now := time.Now()
	events := make([]kernel.DomainEvent, 0, assignments.Len())
	for _, a := range assignments.InOrder() {
		assigned := byID[a.LocationID]
		if !assigned.IsAvailable() {
			continue
		}

		event, err := assigned.Reserve(now)
		if err != nil {
			return services.Assignments{}, err
		}
		if err = locationRepo.Update(ctx, assigned); err != nil {
			return services.Assignments{}, err
		}
		events = append(events, event)
	}

	if len(events) > 0 {
		if err = uow.EventOutbox().Append(ctx, events...); err != nil {
			return services.Assignments{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Assignments{}, err
	}

	return assignments, nil
}
