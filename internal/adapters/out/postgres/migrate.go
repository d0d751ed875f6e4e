package postgres

import (
	"context"

	"warehouse/internal/adapters/out/postgres/locationrepo"
	"warehouse/internal/adapters/out/postgres/movementrepo"
	"warehouse/internal/adapters/out/postgres/outboxrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables and indexes the repositories rely on.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&locationrepo.LocationDTO{},
		&movementrepo.StockMovementDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
}
