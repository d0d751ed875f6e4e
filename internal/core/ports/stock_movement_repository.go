package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"
)

// StockMovementRepository persists stock movement aggregates, scoped by tenant.
type StockMovementRepository interface {
	Add(ctx context.Context, aggregate *movement.StockMovement) error

	// Update persists a status change guarded by the aggregate's version.
	Update(ctx context.Context, aggregate *movement.StockMovement) error

	Get(ctx context.Context, tenantID kernel.TenantID, id kernel.UUID) (*movement.StockMovement, error)
}
