package location

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MaxCodeLength        = 50
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxReasonLength      = 500
)

var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation or RestoreLocation")

// Params holds the attributes a new location is created with.
//
// Either Coordinates or Code must be present. A location with coordinates and
// no explicit Type is a Bin.
type Params struct {
	ID          kernel.UUID
	TenantID    kernel.TenantID
	Coordinates *Coordinates
	Barcode     Barcode
	Capacity    Capacity
	Code        string
	Name        string
	Type        Type
	ParentID    *kernel.UUID
	Description string
}

// RestoreParams extends Params with the state a persisted location carries.
type RestoreParams struct {
	Params
	Status      Status
	BlockedBy   *kernel.UUID
	BlockReason string
	BlockedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int64
}

// Location is the aggregate root for a storage location.
//
// Invariants:
//   - belongs to exactly one tenant for its whole life
//   - capacity.current <= capacity.maximum after every operation
//   - status changes only through the transition table in status.go
//   - block bookkeeping (actor, reason, time) is set iff status is Blocked
type Location struct {
	id          kernel.UUID
	tenantID    kernel.TenantID
	coordinates *Coordinates
	barcode     Barcode
	capacity    Capacity
	status      Status

	code        string
	name        string
	locType     Type
	parentID    *kernel.UUID
	description string

	blockedBy   *kernel.UUID
	blockReason string
	blockedAt   *time.Time

	createdAt time.Time
	updatedAt time.Time
	version   int64

	isConstructed bool
}

// NewLocation validates p and creates a location whose status is derived from
// the initial capacity: Available when empty, Occupied otherwise.
//
// The returned LocationCreated event must be handed to the outbox together
// with the persisted location.
func NewLocation(p Params, at time.Time) (*Location, LocationCreated, error) {
	l := &Location{isConstructed: true}

	if err := l.apply(p); err != nil {
		return nil, LocationCreated{}, err
	}

	l.status = byOccupancy(!l.capacity.IsEmpty())
	l.createdAt = at.UTC()
	l.updatedAt = l.createdAt

	ev := LocationCreated{
		EventMeta:       kernel.NewEventMeta(l.tenantID, l.id, at),
		Barcode:         l.barcode.String(),
		Code:            l.code,
		Type:            l.locType.String(),
		Status:          l.status.String(),
		CurrentQuantity: l.capacity.Current(),
		MaximumQuantity: l.capacity.Maximum(),
	}
	if l.coordinates != nil {
		ev.Coordinates = l.coordinates.String()
	}

	return l, ev, nil
}

// RestoreLocation rebuilds a persisted location without raising events.
func RestoreLocation(p RestoreParams) (*Location, error) {
	l := &Location{isConstructed: true}

	if err := errors.Join(
		l.apply(p.Params),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	l.status = p.Status
	l.blockedBy = p.BlockedBy
	l.blockReason = p.BlockReason
	l.blockedAt = p.BlockedAt
	l.createdAt = p.CreatedAt
	l.updatedAt = p.UpdatedAt
	l.version = p.Version

	return l, nil
}

func (l *Location) apply(p Params) error {
	if err := errors.Join(
		l.setID(p.ID),
		l.setTenantID(p.TenantID),
		l.setAddress(p.Coordinates, p.Code),
		l.setBarcode(p.Barcode),
		l.setCapacity(p.Capacity),
		l.setType(p.Type),
		l.setParentID(p.ID, p.ParentID),
		checkLength("name", p.Name, MaxNameLength),
		checkLength("description", p.Description, MaxDescriptionLength),
	); err != nil {
		return err
	}

	l.name = strings.TrimSpace(p.Name)
	l.description = strings.TrimSpace(p.Description)
	if l.locType == NoType && l.coordinates != nil {
		l.locType = Bin
	}
	return nil
}

func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.id.IsEqual(other.id) && l.tenantID.IsEqual(other.tenantID)
}

// BelongsTo reports whether the location is owned by tenantID.
func (l *Location) BelongsTo(tenantID kernel.TenantID) bool {
	return l.tenantID.IsEqual(tenantID)
}

func (l *Location) ID() kernel.UUID           { return l.id }
func (l *Location) TenantID() kernel.TenantID { return l.tenantID }
func (l *Location) Barcode() Barcode          { return l.barcode }
func (l *Location) Capacity() Capacity        { return l.capacity }
func (l *Location) Status() Status            { return l.status }
func (l *Location) Code() string              { return l.code }
func (l *Location) Name() string              { return l.name }
func (l *Location) Type() Type                { return l.locType }
func (l *Location) ParentID() *kernel.UUID    { return l.parentID }
func (l *Location) Description() string       { return l.description }
func (l *Location) BlockedBy() *kernel.UUID   { return l.blockedBy }
func (l *Location) BlockReason() string       { return l.blockReason }
func (l *Location) BlockedAt() *time.Time     { return l.blockedAt }
func (l *Location) CreatedAt() time.Time      { return l.createdAt }
func (l *Location) UpdatedAt() time.Time      { return l.updatedAt }

// Version is the optimistic concurrency token loaded from persistence.
func (l *Location) Version() int64 { return l.version }

// Coordinates returns the physical address; ok is false for hierarchy-only locations.
func (l *Location) Coordinates() (Coordinates, bool) {
	if l.coordinates == nil {
		return Coordinates{}, false
	}
	return *l.coordinates, true
}

// IsAvailable is true only in Available status.
func (l *Location) IsAvailable() bool {
	return l.status == Available
}

// HasCapacity reports whether q more units can be placed here: the location
// must be Available or Reserved and current + q must not exceed the maximum.
// A Blocked location never has capacity.
func (l *Location) HasCapacity(q decimal.Decimal) bool {
	if l.status != Available && l.status != Reserved {
		return false
	}
	return l.capacity.HasRoomFor(q)
}

// Block takes the location out of service.
//
// Allowed from Available, Occupied and Reserved. The reason is required.
// Blocking an already Blocked location fails with a transition error and
// leaves the location unchanged.
func (l *Location) Block(by kernel.UUID, reason string, at time.Time) (LocationBlocked, error) {
	reason = strings.TrimSpace(reason)
	if err := errors.Join(
		by.Validate(),
		requireReason(reason),
	); err != nil {
		return LocationBlocked{}, err
	}

	next, err := l.status.Block()
	if err != nil {
		return LocationBlocked{}, err
	}

	previous := l.status
	blockedAt := at.UTC()
	l.status = next
	l.blockedBy = &by
	l.blockReason = reason
	l.blockedAt = &blockedAt
	l.updatedAt = blockedAt

	return LocationBlocked{
		EventMeta:      kernel.NewEventMeta(l.tenantID, l.id, at),
		BlockedBy:      by,
		Reason:         reason,
		PreviousStatus: previous.String(),
	}, nil
}

// Unblock returns a Blocked location to service. The target status is derived
// from the current quantity, so block followed by unblock yields the status the
// location would have had without the block.
func (l *Location) Unblock(by kernel.UUID, at time.Time) (LocationUnblocked, error) {
	if err := by.Validate(); err != nil {
		return LocationUnblocked{}, err
	}

	next, err := l.status.Unblock(!l.capacity.IsEmpty())
	if err != nil {
		return LocationUnblocked{}, err
	}

	l.status = next
	l.blockedBy = nil
	l.blockReason = ""
	l.blockedAt = nil
	l.updatedAt = at.UTC()

	return LocationUnblocked{
		EventMeta:   kernel.NewEventMeta(l.tenantID, l.id, at),
		UnblockedBy: by,
		Status:      next.String(),
	}, nil
}

// Reserve earmarks an Available location for an upcoming placement.
func (l *Location) Reserve(at time.Time) (LocationReserved, error) {
	next, err := l.status.Reserve()
	if err != nil {
		return LocationReserved{}, err
	}

	l.status = next
	l.updatedAt = at.UTC()

	return LocationReserved{EventMeta: kernel.NewEventMeta(l.tenantID, l.id, at)}, nil
}

// ReleaseReservation drops a reservation; the status follows the quantity.
func (l *Location) ReleaseReservation(at time.Time) (LocationReservationReleased, error) {
	next, err := l.status.ReleaseReservation(!l.capacity.IsEmpty())
	if err != nil {
		return LocationReservationReleased{}, err
	}

	l.status = next
	l.updatedAt = at.UTC()

	return LocationReservationReleased{
		EventMeta: kernel.NewEventMeta(l.tenantID, l.id, at),
		Status:    next.String(),
	}, nil
}

// AddStock places q units. The location becomes Occupied. Adding to a
// Blocked location fails. Exceeding the maximum fails and nothing changes.
func (l *Location) AddStock(q decimal.Decimal, at time.Time) error {
	if !l.status.CanReceiveStock() {
		return errs.NewStatusTransitionIsInvalidError("location", l.status.String(), string(opAddStock))
	}

	capacity, err := l.capacity.Add(q)
	if err != nil {
		return err
	}
	next, err := l.status.transition(opAddStock, !capacity.IsEmpty())
	if err != nil {
		return err
	}

	l.capacity = capacity
	l.status = next
	l.updatedAt = at.UTC()
	return nil
}

// RemoveStock issues q units. An Occupied location that becomes empty turns
// Available. Removing from a Blocked location fails.
func (l *Location) RemoveStock(q decimal.Decimal, at time.Time) error {
	if !l.status.allows(opRemoveStock) {
		return errs.NewStatusTransitionIsInvalidError("location", l.status.String(), string(opRemoveStock))
	}

	capacity, err := l.capacity.Remove(q)
	if err != nil {
		return err
	}
	next, err := l.status.transition(opRemoveStock, !capacity.IsEmpty())
	if err != nil {
		return err
	}

	l.capacity = capacity
	l.status = next
	l.updatedAt = at.UTC()
	return nil
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setTenantID(tenantID kernel.TenantID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	l.tenantID = tenantID
	return nil
}

func (l *Location) setAddress(coordinates *Coordinates, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if coordinates == nil && code == "" {
		return errs.NewValueIsRequiredError("coordinates or code")
	}
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return err
		}
		c := *coordinates
		l.coordinates = &c
	}
	if err := checkLength("code", code, MaxCodeLength); err != nil {
		return err
	}
	l.code = code
	return nil
}

func (l *Location) setBarcode(barcode Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	l.barcode = barcode
	return nil
}

func (l *Location) setCapacity(capacity Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	l.capacity = capacity
	return nil
}

func (l *Location) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	l.locType = t
	return nil
}

func (l *Location) setParentID(id kernel.UUID, parentID *kernel.UUID) error {
	if parentID == nil {
		return nil
	}
	if err := parentID.Validate(); err != nil {
		return err
	}
	if parentID.IsEqual(id) {
		return errs.NewValueIsInvalidErrorWithCause("parentID", fmt.Errorf("location %s cannot be its own parent", id))
	}
	p := *parentID
	l.parentID = &p
	return nil
}

func requireReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	return checkLength("reason", reason, MaxReasonLength)
}

func checkLength(name, value string, maxLength int) error {
	if n := len(strings.TrimSpace(value)); n > maxLength {
		return errs.NewValueIsOutOfRangeError(name, n, 0, maxLength)
	}
	return nil
}
