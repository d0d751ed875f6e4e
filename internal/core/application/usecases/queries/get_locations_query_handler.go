package queries

import (
	"context"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetLocationsQueryHandler reads location read models from the locations table.
type GetLocationsQueryHandler struct {
	db *gorm.DB
}

func NewGetLocationsQueryHandler(db *gorm.DB) GetLocationsQueryHandler {
	return GetLocationsQueryHandler{db: db}
}

// Handle returns the tenant's locations ordered by barcode. An empty result is
// an empty, non-nil slice.
func (h GetLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetLocationsQuery,
) ([]GetLocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sql strings.Builder
	sql.WriteString(`
		SELECT
			id,
			barcode,
			code,
			name,
			type,
			zone,
			aisle,
			rack,
			level,
			parent_id,
			description,
			status,
			current_quantity,
			maximum_quantity,
			block_reason,
			updated_at
		FROM locations
		WHERE tenant_id = ?`)
	args := []any{query.TenantID().UUID().Bytes()}

	if status := query.Status(); status != nil {
		sql.WriteString(" AND status = ?")
		args = append(args, int(*status))
	}
	sql.WriteString(" ORDER BY barcode")

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]GetLocationsQueryResponse, 0)
	for rows.Next() {
		var (
			resp            GetLocationsQueryResponse
			id              uuid.UUID
			code            *string
			locType, status int
			parentID        uuid.NullUUID
			current, maxQty decimal.Decimal
			updatedAt       time.Time
		)

		err = rows.Scan(
			&id,
			&resp.Barcode,
			&code,
			&resp.Name,
			&locType,
			&resp.Zone,
			&resp.Aisle,
			&resp.Rack,
			&resp.Level,
			&parentID,
			&resp.Description,
			&status,
			&current,
			&maxQty,
			&resp.BlockReason,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromGoogle(id)
		if err != nil {
			return nil, err
		}
		if parentID.Valid {
			parent, parentErr := kernel.UUIDFromGoogle(parentID.UUID)
			if parentErr != nil {
				return nil, parentErr
			}
			resp.ParentID = &parent
		}
		if code != nil {
			resp.Code = *code
		}

		resp.Type = location.Type(locType).String()
		resp.Status = location.Status(status).String()
		resp.CurrentQuantity = current
		resp.MaximumQuantity = maxQty
		resp.UpdatedAt = updatedAt.UTC()

		locations = append(locations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
