// Package movementrepo persists stock movement aggregates with GORM.
package movementrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"

	"github.com/google/uuid"
)

// StockMovementDTO is the row of the stock_movements table.
type StockMovementDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID              uuid.UUID  `gorm:"type:uuid;not null;index:ix_stock_movements_tenant_initiated,priority:1"`
	StockItemID           *uuid.UUID `gorm:"type:uuid"`
	ProductID             uuid.UUID  `gorm:"type:uuid;not null"`
	SourceLocationID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	DestinationLocationID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Quantity              int        `gorm:"type:int;not null"`
	Type                  int        `gorm:"type:smallint;not null"`
	Reason                int        `gorm:"type:smallint;not null"`
	Status                int        `gorm:"type:smallint;not null;index"`

	InitiatedBy        uuid.UUID  `gorm:"type:uuid;not null"`
	InitiatedAt        time.Time  `gorm:"not null;index:ix_stock_movements_tenant_initiated,priority:2"`
	CompletedBy        *uuid.UUID `gorm:"type:uuid"`
	CompletedAt        *time.Time
	CancelledBy        *uuid.UUID `gorm:"type:uuid"`
	CancelledAt        *time.Time
	CancellationReason string `gorm:"type:varchar(500);not null;default:''"`

	Version int64 `gorm:"not null"`
}

func (StockMovementDTO) TableName() string {
	return "stock_movements"
}

// lifecycleColumns are the columns a status change may touch.
func (dto StockMovementDTO) lifecycleColumns() map[string]any {
	return map[string]any{
		"status":              dto.Status,
		"completed_by":        dto.CompletedBy,
		"completed_at":        dto.CompletedAt,
		"cancelled_by":        dto.CancelledBy,
		"cancelled_at":        dto.CancelledAt,
		"cancellation_reason": dto.CancellationReason,
		"version":             dto.Version + 1,
	}
}

func fromDomain(m *movement.StockMovement) StockMovementDTO {
	return StockMovementDTO{
		ID:                    m.ID().Bytes(),
		TenantID:              m.TenantID().UUID().Bytes(),
		StockItemID:           optionalUUID(m.StockItemID()),
		ProductID:             m.ProductID().Bytes(),
		SourceLocationID:      m.SourceLocationID().Bytes(),
		DestinationLocationID: m.DestinationLocationID().Bytes(),
		Quantity:              m.Quantity(),
		Type:                  int(m.Type()),
		Reason:                int(m.Reason()),
		Status:                int(m.Status()),
		InitiatedBy:           m.InitiatedBy().Bytes(),
		InitiatedAt:           m.InitiatedAt(),
		CompletedBy:           optionalUUID(m.CompletedBy()),
		CompletedAt:           m.CompletedAt(),
		CancelledBy:           optionalUUID(m.CancelledBy()),
		CancelledAt:           m.CancelledAt(),
		CancellationReason:    m.CancellationReason(),
		Version:               m.Version(),
	}
}

func toDomain(dto StockMovementDTO) (*movement.StockMovement, error) {
	ids := make([]kernel.UUID, 0, 6)
	for _, raw := range []uuid.UUID{
		dto.ID, dto.TenantID, dto.ProductID, dto.SourceLocationID, dto.DestinationLocationID, dto.InitiatedBy,
	} {
		id, err := kernel.UUIDFromGoogle(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	tenantID, err := kernel.TenantIDFromUUID(ids[1])
	if err != nil {
		return nil, err
	}

	stockItemID, err := restoreOptionalUUID(dto.StockItemID)
	if err != nil {
		return nil, err
	}
	completedBy, err := restoreOptionalUUID(dto.CompletedBy)
	if err != nil {
		return nil, err
	}
	cancelledBy, err := restoreOptionalUUID(dto.CancelledBy)
	if err != nil {
		return nil, err
	}

	return movement.RestoreStockMovement(movement.RestoreParams{
		Params: movement.Params{
			ID:                    ids[0],
			TenantID:              tenantID,
			StockItemID:           stockItemID,
			ProductID:             ids[2],
			SourceLocationID:      ids[3],
			DestinationLocationID: ids[4],
			Quantity:              dto.Quantity,
			Type:                  movement.Type(dto.Type),
			Reason:                movement.Reason(dto.Reason),
			InitiatedBy:           ids[5],
		},
		Status:             movement.Status(dto.Status),
		InitiatedAt:        dto.InitiatedAt.UTC(),
		CompletedBy:        completedBy,
		CompletedAt:        utc(dto.CompletedAt),
		CancelledBy:        cancelledBy,
		CancelledAt:        utc(dto.CancelledAt),
		CancellationReason: dto.CancellationReason,
		Version:            dto.Version,
	})
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreOptionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromGoogle(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
