package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command execution.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. A location change, the
// stock movement behind it and the outbox rows describing both are written
// through the repositories below and become visible together on Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when Begin was not called.
	Commit(ctx context.Context) error

	// Rollback discards uncommitted work. After Commit it does nothing, so
	// callers defer it right after Begin.
	Rollback(ctx context.Context) error

	LocationRepository() LocationRepository
	StockMovementRepository() StockMovementRepository
	EventOutbox() EventOutbox
}
