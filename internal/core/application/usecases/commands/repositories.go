// Package commands contains the write operations of the warehouse core.
// Every command is built by a validating constructor and executed by a handler
// that owns one transaction: it loads aggregates, applies domain behaviour,
// persists the result and appends the raised events to the outbox before commit.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work views used by the handlers. Each handler depends on the
// narrowest view that covers the repositories it touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	StockMovementRepoFactory interface {
		StockMovementRepository() ports.StockMovementRepository
	}

	OutboxFactory interface {
		EventOutbox() ports.EventOutbox
	}

	// LocationUoW covers commands that only change locations.
	LocationUoW interface {
		TxManager
		LocationRepoFactory
		OutboxFactory
	}

	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// OutboxUoW covers the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// UoW covers stock movement commands, which touch movements and the
	// locations on both ends of them.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   movements := uow.StockMovementRepository()
	//   locations := uow.LocationRepository()
	//   // ... perform operations
	//
	//   err = uow.EventOutbox().Append(ctx, events...)
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		LocationRepoFactory
		StockMovementRepoFactory
		OutboxFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
