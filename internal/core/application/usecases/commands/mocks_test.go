package commands_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/movement"
	"warehouse/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Get(
	ctx context.Context,
	tenantID kernel.TenantID,
	id kernel.UUID,
) (*location.Location, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepository) FindCandidates(
	ctx context.Context,
	tenantID kernel.TenantID,
	filter ports.LocationFilter,
) ([]*location.Location, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*location.Location), args.Error(1)
}

func (m *MockLocationRepository) ExistsByBarcode(
	ctx context.Context,
	tenantID kernel.TenantID,
	barcode location.Barcode,
) (bool, error) {
	args := m.Called(ctx, tenantID, barcode)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocationRepository) ExistsByCode(ctx context.Context, tenantID kernel.TenantID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, code)
	return args.Bool(0), args.Error(1)
}

type MockStockMovementRepository struct{ mock.Mock }

func (m *MockStockMovementRepository) Add(ctx context.Context, mv *movement.StockMovement) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

func (m *MockStockMovementRepository) Update(ctx context.Context, mv *movement.StockMovement) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

func (m *MockStockMovementRepository) Get(
	ctx context.Context,
	tenantID kernel.TenantID,
	id kernel.UUID,
) (*movement.StockMovement, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movement.StockMovement), args.Error(1)
}

type MockEventOutbox struct{ mock.Mock }

func (m *MockEventOutbox) Append(ctx context.Context, events ...kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockEventOutbox) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockEventOutbox) MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockEventOutbox) MarkFailed(ctx context.Context, id kernel.UUID, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// MockUoW satisfies every unit of work view the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockUoW) StockMovementRepository() ports.StockMovementRepository {
	args := m.Called()
	return args.Get(0).(ports.StockMovementRepository)
}

func (m *MockUoW) EventOutbox() ports.EventOutbox {
	args := m.Called()
	return args.Get(0).(ports.EventOutbox)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockLocationUoWFactory struct{ mock.Mock }

func (m *MockLocationUoWFactory) Create() commands.LocationUoW {
	args := m.Called()
	return args.Get(0).(commands.LocationUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// eventsOfType matches an Append call carrying exactly the given event types in order.
func eventsOfType(types ...string) any {
	return mock.MatchedBy(func(events []kernel.DomainEvent) bool {
		if len(events) != len(types) {
			return false
		}
		for i, e := range events {
			if e.EventType() != types[i] {
				return false
			}
		}
		return true
	})
}

// storedLocation builds a persisted coordinate-addressed Bin.
func storedLocation(
	t *testing.T,
	tenant kernel.TenantID,
	zone string,
	status location.Status,
	current, maximum int64,
) *location.Location {
	t.Helper()
	id := kernel.NewUUID()
	coords, err := location.NewCoordinates(zone, "1", "1", "1")
	require.NoError(t, err)
	barcode, err := location.GenerateBarcode(coords, id.String())
	require.NoError(t, err)
	capacity, err := location.NewCapacity(dec(current), dec(maximum))
	require.NoError(t, err)

	l, err := location.RestoreLocation(location.RestoreParams{
		Params: location.Params{
			ID:          id,
			TenantID:    tenant,
			Coordinates: &coords,
			Barcode:     barcode,
			Capacity:    capacity,
		},
		Status:  status,
		Version: 1,
	})
	require.NoError(t, err)
	return l
}

// pendingMovement builds a persisted Pending movement between two locations.
func pendingMovement(t *testing.T, tenant kernel.TenantID, source, destination kernel.UUID, quantity int) *movement.StockMovement {
	t.Helper()
	mv, err := movement.RestoreStockMovement(movement.RestoreParams{
		Params: movement.Params{
			ID:                    kernel.NewUUID(),
			TenantID:              tenant,
			ProductID:             kernel.NewUUID(),
			SourceLocationID:      source,
			DestinationLocationID: destination,
			Quantity:              quantity,
			Type:                  movement.Transfer,
			Reason:                movement.ReasonReorganization,
			InitiatedBy:           kernel.NewUUID(),
		},
		Status:      movement.Pending,
		InitiatedAt: time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC),
		Version:     1,
	})
	require.NoError(t, err)
	return mv
}
