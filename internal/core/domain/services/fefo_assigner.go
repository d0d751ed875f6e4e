package services

import (
	"fmt"
	"math"
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"
)

// pickingZone is the zone closest to the picking face.
const pickingZone = "A"

// Assignment is one stock item placed into one location.
type Assignment struct {
	StockItemID kernel.UUID
	LocationID  kernel.UUID
}

// Assignments is the result of a FEFO batch. It keeps both a lookup by stock
// item and the order in which items were placed (soonest expiring first).
type Assignments struct {
	byItem map[kernel.UUID]kernel.UUID
	order  []Assignment
}

// LocationFor returns the location assigned to stockItemID.
func (a Assignments) LocationFor(stockItemID kernel.UUID) (kernel.UUID, bool) {
	id, ok := a.byItem[stockItemID]
	return id, ok
}

// InOrder returns the assignments in placement order.
func (a Assignments) InOrder() []Assignment {
	return slices.Clone(a.order)
}

func (a Assignments) Len() int {
	return len(a.order)
}

// FEFOAssigner places stock items First-Expiring-First-Out: items that
// expire soonest get the locations closest to the picking zone.
//
// Each location receives at most one item per batch, regardless of how much
// headroom it has left. This keeps a single planning pass from overcommitting
// a slot and keeps the algorithm O(items × locations).
type FEFOAssigner struct{}

func NewFEFOAssigner() FEFOAssigner {
	return FEFOAssigner{}
}

// Assign computes a placement for every item or fails as a whole.
//
// Algorithm:
//  1. items are stable-sorted by expiration date, items without one last
//  2. locations are filtered to Available and Reserved and stable-sorted by
//     proximity score (see ProximityScore)
//  3. each item takes the first unconsumed location with capacity for it
//  4. an item with no such location fails the batch with NoLocationAvailableError
//
// Every location must belong to tenantID; a foreign location is rejected as
// invalid input rather than silently skipped. Neither input slice is modified.
func (f FEFOAssigner) Assign(
	tenantID kernel.TenantID,
	items []StockItemRequest,
	locations []*location.Location,
) (Assignments, error) {
	if err := f.validate(tenantID, items, locations); err != nil {
		return Assignments{}, err
	}

	sortedItems := slices.Clone(items)
	slices.SortStableFunc(sortedItems, func(a, b StockItemRequest) int {
		switch {
		case a.expiresBefore(b):
			return -1
		case b.expiresBefore(a):
			return 1
		default:
			return 0
		}
	})

	candidates := make([]*location.Location, 0, len(locations))
	for _, l := range locations {
		if s := l.Status(); s == location.Available || s == location.Reserved {
			candidates = append(candidates, l)
		}
	}
	slices.SortStableFunc(candidates, func(a, b *location.Location) int {
		return ProximityScore(a) - ProximityScore(b)
	})

	result := Assignments{
		byItem: make(map[kernel.UUID]kernel.UUID, len(items)),
		order:  make([]Assignment, 0, len(items)),
	}
	consumed := make(map[kernel.UUID]struct{}, len(items))

	for _, item := range sortedItems {
		chosen := f.firstFit(item, candidates, consumed)
		if chosen == nil {
			return Assignments{}, &NoLocationAvailableError{
				StockItemID: item.StockItemID(),
				Quantity:    item.Quantity(),
			}
		}

		consumed[chosen.ID()] = struct{}{}
		result.byItem[item.StockItemID()] = chosen.ID()
		result.order = append(result.order, Assignment{
			StockItemID: item.StockItemID(),
			LocationID:  chosen.ID(),
		})
	}

	return result, nil
}

func (f FEFOAssigner) firstFit(
	item StockItemRequest,
	candidates []*location.Location,
	consumed map[kernel.UUID]struct{},
) *location.Location {
	for _, l := range candidates {
		if _, used := consumed[l.ID()]; used {
			continue
		}
		if l.HasCapacity(item.Quantity()) {
			return l
		}
	}
	return nil
}

func (f FEFOAssigner) validate(
	tenantID kernel.TenantID,
	items []StockItemRequest,
	locations []*location.Location,
) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("stockItems")
	}
	if len(locations) == 0 {
		return errs.NewValueIsRequiredError("locations")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.StockItemID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"stockItems",
				fmt.Errorf("stock item %s is listed more than once", item.StockItemID()),
			)
		}
		seen[item.StockItemID()] = struct{}{}
	}

	return validateLocations(tenantID, locations)
}

// ProximityScore ranks a location by distance from the picking zone; lower is
// closer. Zone "A" scores 0, any other zone scores the distance between its
// first letter and 'A'. Locations without coordinates score math.MaxInt32 and
// sort last.
func ProximityScore(l *location.Location) int {
	c, ok := l.Coordinates()
	if !ok {
		return math.MaxInt32
	}
	zone := c.Zone()
	if zone == pickingZone {
		return 0
	}
	d := int(zone[0]) - int(pickingZone[0])
	if d < 0 {
		d = -d
	}
	return d
}

func validateLocations(tenantID kernel.TenantID, locations []*location.Location) error {
	for _, l := range locations {
		if err := l.Validate(); err != nil {
			return err
		}
		if !l.BelongsTo(tenantID) {
			return errs.NewValueIsInvalidErrorWithCause(
				"locations",
				fmt.Errorf("location %s belongs to another tenant", l.ID()),
			)
		}
	}
	return nil
}
