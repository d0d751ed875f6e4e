package queries

import (
	"context"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetStockMovementsQueryHandler struct {
	db *gorm.DB
}

func NewGetStockMovementsQueryHandler(db *gorm.DB) GetStockMovementsQueryHandler {
	return GetStockMovementsQueryHandler{db: db}
}

// Handle returns the tenant's movements ordered by initiation time, newest
// first. Movements initiated at the same instant are ordered by id.
func (h GetStockMovementsQueryHandler) Handle(
	ctx context.Context,
	query GetStockMovementsQuery,
) ([]GetStockMovementsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sql strings.Builder
	sql.WriteString(`
		SELECT
			id,
			product_id,
			source_location_id,
			destination_location_id,
			quantity,
			type,
			reason,
			status,
			initiated_by,
			initiated_at,
			completed_at,
			cancelled_at,
			cancellation_reason
		FROM stock_movements
		WHERE tenant_id = ?`)
	args := []any{query.TenantID().UUID().Bytes()}

	if status := query.Status(); status != nil {
		sql.WriteString(" AND status = ?")
		args = append(args, int(*status))
	}
	sql.WriteString(" ORDER BY initiated_at DESC, id")

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]GetStockMovementsQueryResponse, 0)
	for rows.Next() {
		var (
			resp                      GetStockMovementsQueryResponse
			id, product, source, dest uuid.UUID
			initiatedBy               uuid.UUID
			mvType, reason, status    int
			initiatedAt               time.Time
			completedAt, cancelledAt  *time.Time
		)

		err = rows.Scan(
			&id,
			&product,
			&source,
			&dest,
			&resp.Quantity,
			&mvType,
			&reason,
			&status,
			&initiatedBy,
			&initiatedAt,
			&completedAt,
			&cancelledAt,
			&resp.CancellationReason,
		)
		if err != nil {
			return nil, err
		}

		ids, idErr := restoreIDs(id, product, source, dest, initiatedBy)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = ids[0]
		resp.ProductID = ids[1]
		resp.SourceLocationID = ids[2]
		resp.DestinationLocationID = ids[3]
		resp.InitiatedBy = ids[4]

		resp.Type = movement.Type(mvType).String()
		resp.Reason = movement.Reason(reason).String()
		resp.Status = movement.Status(status).String()
		resp.InitiatedAt = initiatedAt.UTC()
		resp.CompletedAt = utcPtr(completedAt)
		resp.CancelledAt = utcPtr(cancelledAt)

		movements = append(movements, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}

func restoreIDs(raw ...uuid.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromGoogle(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
