// Package locationrepo persists location aggregates with GORM.
package locationrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	barcodeConstraint = "ux_locations_tenant_barcode"
	codeConstraint    = "ux_locations_tenant_code"
)

// LocationDTO is the row of the locations table. Coordinate columns are empty
// for hierarchy-only locations and Code is NULL when no code was given, so
// the (tenant_id, code) unique index only applies to coded locations.
type LocationDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_locations_tenant_barcode,priority:1;uniqueIndex:ux_locations_tenant_code,priority:1"`
	Barcode  string    `gorm:"type:varchar(20);not null;uniqueIndex:ux_locations_tenant_barcode,priority:2"`
	Code     *string   `gorm:"type:varchar(50);uniqueIndex:ux_locations_tenant_code,priority:2"`

	Zone  string `gorm:"type:varchar(10);not null;default:'';index"`
	Aisle string `gorm:"type:varchar(10);not null;default:''"`
	Rack  string `gorm:"type:varchar(10);not null;default:''"`
	Level string `gorm:"type:varchar(10);not null;default:''"`

	Name        string     `gorm:"type:varchar(100);not null;default:''"`
	Type        int        `gorm:"type:smallint;not null"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	Description string     `gorm:"type:varchar(500);not null;default:''"`

	CurrentQuantity decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	MaximumQuantity decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	Status          int             `gorm:"type:smallint;not null;index"`

	BlockedBy   *uuid.UUID `gorm:"type:uuid"`
	BlockReason string     `gorm:"type:varchar(500);not null;default:''"`
	BlockedAt   *time.Time

	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
	Version   int64     `gorm:"not null"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

// updateColumns lists every mutable column; identity, tenant and creation
// time never change.
func (dto LocationDTO) updateColumns() map[string]any {
	return map[string]any{
		"barcode":          dto.Barcode,
		"code":             dto.Code,
		"zone":             dto.Zone,
		"aisle":            dto.Aisle,
		"rack":             dto.Rack,
		"level":            dto.Level,
		"name":             dto.Name,
		"type":             dto.Type,
		"parent_id":        dto.ParentID,
		"description":      dto.Description,
		"current_quantity": dto.CurrentQuantity,
		"maximum_quantity": dto.MaximumQuantity,
		"status":           dto.Status,
		"blocked_by":       dto.BlockedBy,
		"block_reason":     dto.BlockReason,
		"blocked_at":       dto.BlockedAt,
		"updated_at":       dto.UpdatedAt,
		"version":          dto.Version + 1,
	}
}

func fromDomain(l *location.Location) LocationDTO {
	dto := LocationDTO{
		ID:              l.ID().Bytes(),
		TenantID:        l.TenantID().UUID().Bytes(),
		Barcode:         l.Barcode().String(),
		Name:            l.Name(),
		Type:            int(l.Type()),
		ParentID:        optionalUUID(l.ParentID()),
		Description:     l.Description(),
		CurrentQuantity: l.Capacity().Current(),
		MaximumQuantity: l.Capacity().Maximum(),
		Status:          int(l.Status()),
		BlockedBy:       optionalUUID(l.BlockedBy()),
		BlockReason:     l.BlockReason(),
		BlockedAt:       l.BlockedAt(),
		CreatedAt:       l.CreatedAt(),
		UpdatedAt:       l.UpdatedAt(),
		Version:         l.Version(),
	}

	if code := l.Code(); code != "" {
		dto.Code = &code
	}
	if c, ok := l.Coordinates(); ok {
		dto.Zone = c.Zone()
		dto.Aisle = c.Aisle()
		dto.Rack = c.Rack()
		dto.Level = c.Level()
	}

	return dto
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	tenantUUID, err := kernel.UUIDFromGoogle(dto.TenantID)
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.TenantIDFromUUID(tenantUUID)
	if err != nil {
		return nil, err
	}

	barcode, err := location.NewBarcode(dto.Barcode)
	if err != nil {
		return nil, err
	}
	capacity, err := location.NewCapacity(dto.CurrentQuantity, dto.MaximumQuantity)
	if err != nil {
		return nil, err
	}

	var coordinates *location.Coordinates
	if dto.Zone != "" {
		c, coordErr := location.NewCoordinates(dto.Zone, dto.Aisle, dto.Rack, dto.Level)
		if coordErr != nil {
			return nil, coordErr
		}
		coordinates = &c
	}

	parentID, err := restoreOptionalUUID(dto.ParentID)
	if err != nil {
		return nil, err
	}
	blockedBy, err := restoreOptionalUUID(dto.BlockedBy)
	if err != nil {
		return nil, err
	}

	var code string
	if dto.Code != nil {
		code = *dto.Code
	}

	var blockedAt *time.Time
	if dto.BlockedAt != nil {
		at := dto.BlockedAt.UTC()
		blockedAt = &at
	}

	return location.RestoreLocation(location.RestoreParams{
		Params: location.Params{
			ID:          id,
			TenantID:    tenantID,
			Coordinates: coordinates,
			Barcode:     barcode,
			Capacity:    capacity,
			Code:        code,
			Name:        dto.Name,
			Type:        location.Type(dto.Type),
			ParentID:    parentID,
			Description: dto.Description,
		},
		Status:      location.Status(dto.Status),
		BlockedBy:   blockedBy,
		BlockReason: dto.BlockReason,
		BlockedAt:   blockedAt,
		CreatedAt:   dto.CreatedAt.UTC(),
		UpdatedAt:   dto.UpdatedAt.UTC(),
		Version:     dto.Version,
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
