// Package ports defines the contracts between the warehouse core and its
// infrastructure: persistence, the event outbox and outbound publishing.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
)

// LocationFilter narrows candidate lookups. Zero values mean "any".
type LocationFilter struct {
	// Statuses restricts results to these statuses.
	Statuses []location.Status

	// Types restricts results to these hierarchy types.
	Types []location.Type

	// Zone restricts coordinate-addressed locations to one zone.
	Zone string

	// Limit caps the number of results; 0 means no cap.
	Limit int
}

// LocationRepository persists location aggregates. Every method is scoped to
// a tenant: a location of another tenant is reported as not found.
type LocationRepository interface {
	// Add persists a new location. A duplicate barcode or code within the
	// tenant yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *location.Location) error

	// Update persists changes guarded by the aggregate's version. A stale
	// version yields errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *location.Location) error

	// Get returns errs.ErrObjectNotFound when the location does not exist in the tenant.
	Get(ctx context.Context, tenantID kernel.TenantID, id kernel.UUID) (*location.Location, error)

	// FindCandidates returns locations matching filter, ordered by barcode
	// so that callers see a stable input order.
	FindCandidates(ctx context.Context, tenantID kernel.TenantID, filter LocationFilter) ([]*location.Location, error)

	ExistsByBarcode(ctx context.Context, tenantID kernel.TenantID, barcode location.Barcode) (bool, error)

	ExistsByCode(ctx context.Context, tenantID kernel.TenantID, code string) (bool, error)
}
