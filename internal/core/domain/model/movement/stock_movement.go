package movement

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

const MaxCancellationReasonLength = 500

var ErrStockMovementIsNotConstructed = errors.New("StockMovement must be created via NewStockMovement or RestoreStockMovement")

// Params holds the attributes a movement is created with.
type Params struct {
	ID                    kernel.UUID
	TenantID              kernel.TenantID
	StockItemID           *kernel.UUID
	ProductID             kernel.UUID
	SourceLocationID      kernel.UUID
	DestinationLocationID kernel.UUID
	Quantity              int
	Type                  Type
	Reason                Reason
	InitiatedBy           kernel.UUID
}

// RestoreParams extends Params with lifecycle state loaded from persistence.
type RestoreParams struct {
	Params
	Status             Status
	InitiatedAt        time.Time
	CompletedBy        *kernel.UUID
	CompletedAt        *time.Time
	CancelledBy        *kernel.UUID
	CancelledAt        *time.Time
	CancellationReason string
	Version            int64
}

// StockMovement records a quantity of a product travelling from a source
// location to a distinct destination location within one tenant.
type StockMovement struct {
	id                    kernel.UUID
	tenantID              kernel.TenantID
	stockItemID           *kernel.UUID
	productID             kernel.UUID
	sourceLocationID      kernel.UUID
	destinationLocationID kernel.UUID
	quantity              int
	movementType          Type
	reason                Reason
	status                Status

	initiatedBy        kernel.UUID
	initiatedAt        time.Time
	completedBy        *kernel.UUID
	completedAt        *time.Time
	cancelledBy        *kernel.UUID
	cancelledAt        *time.Time
	cancellationReason string

	version int64

	isConstructed bool
}

// NewStockMovement validates p and creates a Pending movement.
//
// Validation errors of independent fields are joined. Source and destination
// must differ and the quantity must be positive.
func NewStockMovement(p Params, at time.Time) (*StockMovement, StockMovementCreated, error) {
	m := &StockMovement{
		status:        Pending,
		isConstructed: true,
	}

	if err := m.apply(p); err != nil {
		return nil, StockMovementCreated{}, err
	}
	m.initiatedAt = at.UTC()

	return m, StockMovementCreated{
		EventMeta:             kernel.NewEventMeta(m.tenantID, m.id, at),
		StockItemID:           m.stockItemID,
		ProductID:             m.productID,
		SourceLocationID:      m.sourceLocationID,
		DestinationLocationID: m.destinationLocationID,
		Quantity:              m.quantity,
		MovementType:          m.movementType.String(),
		Reason:                m.reason.String(),
		InitiatedBy:           m.initiatedBy,
	}, nil
}

// RestoreStockMovement rebuilds a persisted movement without raising events.
func RestoreStockMovement(p RestoreParams) (*StockMovement, error) {
	m := &StockMovement{isConstructed: true}

	if err := errors.Join(
		m.apply(p.Params),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	m.status = p.Status
	m.initiatedAt = p.InitiatedAt
	m.completedBy = p.CompletedBy
	m.completedAt = p.CompletedAt
	m.cancelledBy = p.CancelledBy
	m.cancelledAt = p.CancelledAt
	m.cancellationReason = p.CancellationReason
	m.version = p.Version

	return m, nil
}

func (m *StockMovement) apply(p Params) error {
	if err := errors.Join(
		validateID("id", p.ID),
		p.TenantID.Validate(),
		validateID("productID", p.ProductID),
		validateID("sourceLocationID", p.SourceLocationID),
		validateID("destinationLocationID", p.DestinationLocationID),
		validateID("initiatedBy", p.InitiatedBy),
		validateOptionalID("stockItemID", p.StockItemID),
		validateQuantity(p.Quantity),
		p.Type.Validate(),
		p.Reason.Validate(),
	); err != nil {
		return err
	}
	if p.SourceLocationID.IsEqual(p.DestinationLocationID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"destinationLocationID",
			fmt.Errorf("source and destination are both %s", p.SourceLocationID),
		)
	}

	m.id = p.ID
	m.tenantID = p.TenantID
	m.stockItemID = p.StockItemID
	m.productID = p.ProductID
	m.sourceLocationID = p.SourceLocationID
	m.destinationLocationID = p.DestinationLocationID
	m.quantity = p.Quantity
	m.movementType = p.Type
	m.reason = p.Reason
	m.initiatedBy = p.InitiatedBy
	return nil
}

func (m *StockMovement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrStockMovementIsNotConstructed
	}
	return nil
}

func (m *StockMovement) BelongsTo(tenantID kernel.TenantID) bool {
	return m.tenantID.IsEqual(tenantID)
}

func (m *StockMovement) ID() kernel.UUID                    { return m.id }
func (m *StockMovement) TenantID() kernel.TenantID          { return m.tenantID }
func (m *StockMovement) StockItemID() *kernel.UUID          { return m.stockItemID }
func (m *StockMovement) ProductID() kernel.UUID             { return m.productID }
func (m *StockMovement) SourceLocationID() kernel.UUID      { return m.sourceLocationID }
func (m *StockMovement) DestinationLocationID() kernel.UUID { return m.destinationLocationID }
func (m *StockMovement) Quantity() int                      { return m.quantity }
func (m *StockMovement) Type() Type                         { return m.movementType }
func (m *StockMovement) Reason() Reason                     { return m.reason }
func (m *StockMovement) Status() Status                     { return m.status }
func (m *StockMovement) InitiatedBy() kernel.UUID           { return m.initiatedBy }
func (m *StockMovement) InitiatedAt() time.Time             { return m.initiatedAt }
func (m *StockMovement) CompletedBy() *kernel.UUID          { return m.completedBy }
func (m *StockMovement) CompletedAt() *time.Time            { return m.completedAt }
func (m *StockMovement) CancelledBy() *kernel.UUID          { return m.cancelledBy }
func (m *StockMovement) CancelledAt() *time.Time            { return m.cancelledAt }
func (m *StockMovement) CancellationReason() string         { return m.cancellationReason }
func (m *StockMovement) Version() int64                     { return m.version }

// Complete finishes a Pending movement. Calling it on a terminal movement
// fails and leaves the movement unchanged.
func (m *StockMovement) Complete(by kernel.UUID, at time.Time) (StockMovementCompleted, error) {
	if err := validateID("completedBy", by); err != nil {
		return StockMovementCompleted{}, err
	}

	next, err := m.status.Complete()
	if err != nil {
		return StockMovementCompleted{}, err
	}

	completedAt := at.UTC()
	m.status = next
	m.completedBy = &by
	m.completedAt = &completedAt

	return StockMovementCompleted{
		EventMeta:             kernel.NewEventMeta(m.tenantID, m.id, at),
		ProductID:             m.productID,
		SourceLocationID:      m.sourceLocationID,
		DestinationLocationID: m.destinationLocationID,
		Quantity:              m.quantity,
		CompletedBy:           by,
	}, nil
}

// Cancel abandons a Pending movement. A reason is required. Calling it on a
// terminal movement fails and leaves the movement unchanged.
func (m *StockMovement) Cancel(by kernel.UUID, reason string, at time.Time) (StockMovementCancelled, error) {
	reason = strings.TrimSpace(reason)
	if err := errors.Join(
		validateID("cancelledBy", by),
		validateReason(reason),
	); err != nil {
		return StockMovementCancelled{}, err
	}

	next, err := m.status.Cancel()
	if err != nil {
		return StockMovementCancelled{}, err
	}

	cancelledAt := at.UTC()
	m.status = next
	m.cancelledBy = &by
	m.cancelledAt = &cancelledAt
	m.cancellationReason = reason

	return StockMovementCancelled{
		EventMeta:          kernel.NewEventMeta(m.tenantID, m.id, at),
		CancelledBy:        by,
		CancellationReason: reason,
	}, nil
}

func validateID(name string, id kernel.UUID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func validateOptionalID(name string, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return validateID(name, *id)
}

func validateQuantity(q int) error {
	if q <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", q))
	}
	return nil
}

func validateReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason")
	}
	if len(reason) > MaxCancellationReasonLength {
		return errs.NewValueIsOutOfRangeError("cancellationReason", len(reason), 1, MaxCancellationReasonLength)
	}
	return nil
}
