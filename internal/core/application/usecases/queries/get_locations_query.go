// Package queries contains the read side of the warehouse core. Handlers
// read straight from the database into flat read models and never load
// aggregates.
package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetLocationsQueryIsNotConstructed = errors.New(
	"GetLocationsQuery must be created via NewGetLocationsQuery constructor",
)

// GetLocationsQuery lists the locations of one tenant, optionally narrowed to
// a single status.
//
// Example:
//
//	blocked := location.Blocked
//	query, err := NewGetLocationsQuery(tenantID, &blocked)
//	if err != nil {
//	    return err
//	}
//	locations, err := handler.Handle(ctx, query)
type GetLocationsQuery struct {
	tenantID kernel.TenantID
	status   *location.Status

	guard guard.ConstructorGuard
}

// NewGetLocationsQuery creates the query. A nil status lists every location.
func NewGetLocationsQuery(tenantID kernel.TenantID, status *location.Status) (GetLocationsQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetLocationsQuery{}, err
	}

	query := GetLocationsQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetLocationsQuery{}, err
		}
		s := *status
		query.status = &s
	}

	return query, nil
}

func (q GetLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationsQueryIsNotConstructed)
}

func (q GetLocationsQuery) TenantID() kernel.TenantID { return q.tenantID }

// Status returns the requested status filter, or nil.
func (q GetLocationsQuery) Status() *location.Status { return q.status }

// GetLocationsQueryResponse is the read model of one location. Coordinate
// fields are empty for hierarchy-only locations.
type GetLocationsQueryResponse struct {
	ID              kernel.UUID
	Barcode         string
	Code            string
	Name            string
	Type            string
	Zone            string
	Aisle           string
	Rack            string
	Level           string
	ParentID        *kernel.UUID
	Description     string
	Status          string
	CurrentQuantity decimal.Decimal
	MaximumQuantity decimal.Decimal
	BlockReason     string
	UpdatedAt       time.Time
}
