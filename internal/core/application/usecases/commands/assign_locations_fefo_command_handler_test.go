package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fefoFilter = ports.LocationFilter{
	Statuses: []location.Status{location.Available, location.Reserved},
}

func stockItem(t *testing.T, quantity int64, expiresAt time.Time) services.StockItemRequest {
	t.Helper()
	r, err := services.NewStockItemRequest(kernel.NewUUID(), dec(quantity), &expiresAt, "")
	require.NoError(t, err)
	return r
}

func TestAssignLocationsFEFOCommandHandler_Handle_ReservesAvailableLocations(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewTenantID()

	zoneA := storedLocation(t, tenant, "A", location.Available, 0, 10)
	zoneB := storedLocation(t, tenant, "B", location.Reserved, 0, 10)
	zoneC := storedLocation(t, tenant, "C", location.Available, 0, 10)

	later := stockItem(t, 5, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	sooner := stockItem(t, 5, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	cmd, err := commands.NewAssignLocationsFEFOCommand(tenant, []services.StockItemRequest{later, sooner})
	require.NoError(t, err)

	locationRepo := new(MockLocationRepository)
	outbox := new(MockEventOutbox)
	uow := new(MockUoW)
	factory := new(MockLocationUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("FindCandidates", ctx, tenant, fefoFilter).
			Return([]*location.Location{zoneC, zoneB, zoneA}, nil).Once(),
		locationRepo.On("Update", ctx, zoneA).Return(nil).Once(),
		uow.On("EventOutbox").Return(outbox).Once(),
		outbox.On("Append", ctx, eventsOfType("location.reserved")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignLocationsFEFOCommandHandler(factory)
	assignments, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 2, assignments.Len())

	got, ok := assignments.LocationFor(sooner.StockItemID())
	require.True(t, ok)
	assert.Equal(t, zoneA.ID(), got)

	got, ok = assignments.LocationFor(later.StockItemID())
	require.True(t, ok)
	assert.Equal(t, zoneB.ID(), got)

	assert.Equal(t, location.Reserved, zoneA.Status())
	assert.Equal(t, location.Available, zoneC.Status())
	locationRepo.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignLocationsFEFOCommandHandler_Handle_NoRoomFailsWholeBatch(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewTenantID()
	full := storedLocation(t, tenant, "A", location.Available, 5, 5)
	wanted := stockItem(t, 1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	cmd, err := commands.NewAssignLocationsFEFOCommand(tenant, []services.StockItemRequest{wanted})
	require.NoError(t, err)

	locationRepo := new(MockLocationRepository)
	uow := new(MockUoW)
	factory := new(MockLocationUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("FindCandidates", ctx, tenant, fefoFilter).
			Return([]*location.Location{full}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignLocationsFEFOCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	var noRoom *services.NoLocationAvailableError
	require.ErrorAs(t, err, &noRoom)
	assert.Equal(t, wanted.StockItemID(), noRoom.StockItemID)
	assert.Equal(t, location.Available, full.Status())
	locationRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignLocationsFEFOCommandHandler_Handle_AlreadyReservedNeedsNoUpdate(t *testing.T) {
	ctx := t.Context()
	tenant := kernel.NewTenantID()
	reserved := storedLocation(t, tenant, "A", location.Reserved, 0, 10)

	cmd, err := commands.NewAssignLocationsFEFOCommand(tenant, []services.StockItemRequest{
		stockItem(t, 2, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	locationRepo := new(MockLocationRepository)
	uow := new(MockUoW)
	factory := new(MockLocationUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("FindCandidates", ctx, tenant, fefoFilter).
			Return([]*location.Location{reserved}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignLocationsFEFOCommandHandler(factory)
	assignments, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, assignments.Len())
	uow.AssertNotCalled(t, "EventOutbox")
	uow.AssertExpectations(t)
}

func TestNewAssignLocationsFEFOCommand_RequiresItems(t *testing.T) {
	_, err := commands.NewAssignLocationsFEFOCommand(kernel.NewTenantID(), nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAssignLocationsFEFOCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockLocationUoWFactory)
	handler := commands.NewAssignLocationsFEFOCommandHandler(factory)

	_, err := handler.Handle(t.Context(), commands.AssignLocationsFEFOCommand{})

	require.ErrorIs(t, err, commands.ErrAssignLocationsFEFOCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
