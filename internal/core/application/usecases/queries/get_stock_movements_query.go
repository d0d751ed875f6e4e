package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"
	"warehouse/internal/pkg/guard"
)

var ErrGetStockMovementsQueryIsNotConstructed = errors.New(
	"GetStockMovementsQuery must be created via NewGetStockMovementsQuery constructor",
)

// GetStockMovementsQuery lists a tenant's stock movements, newest first.
type GetStockMovementsQuery struct {
	tenantID kernel.TenantID
	status   *movement.Status

	guard guard.ConstructorGuard
}

// NewGetStockMovementsQuery creates the query. A nil status lists movements
// in every status.
func NewGetStockMovementsQuery(tenantID kernel.TenantID, status *movement.Status) (GetStockMovementsQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetStockMovementsQuery{}, err
	}

	query := GetStockMovementsQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetStockMovementsQuery{}, err
		}
		s := *status
		query.status = &s
	}

	return query, nil
}

func (q GetStockMovementsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockMovementsQueryIsNotConstructed)
}

func (q GetStockMovementsQuery) TenantID() kernel.TenantID { return q.tenantID }

func (q GetStockMovementsQuery) Status() *movement.Status { return q.status }

type GetStockMovementsQueryResponse struct {
	ID                    kernel.UUID
	ProductID             kernel.UUID
	SourceLocationID      kernel.UUID
	DestinationLocationID kernel.UUID
	Quantity              int
	Type                  string
	Reason                string
	Status                string
	InitiatedBy           kernel.UUID
	InitiatedAt           time.Time
	CompletedAt           *time.Time
	CancelledAt           *time.Time
	CancellationReason    string
}
