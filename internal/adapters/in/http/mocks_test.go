package http_test

import (
	"context"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

type MockCreateLocationHandler struct{ mock.Mock }

func (m *MockCreateLocationHandler) Handle(ctx context.Context, cmd commands.CreateLocationCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockUpdateLocationStatusHandler struct{ mock.Mock }

func (m *MockUpdateLocationStatusHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateLocationStatusCommand,
) (location.Status, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(location.Status), args.Error(1)
}

type MockAssignLocationsFEFOHandler struct{ mock.Mock }

func (m *MockAssignLocationsFEFOHandler) Handle(
	ctx context.Context,
	cmd commands.AssignLocationsFEFOCommand,
) (services.Assignments, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(services.Assignments), args.Error(1)
}

type MockRouteReturnHandler struct{ mock.Mock }

func (m *MockRouteReturnHandler) Handle(ctx context.Context, cmd commands.RouteReturnCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockCreateStockMovementHandler struct{ mock.Mock }

func (m *MockCreateStockMovementHandler) Handle(
	ctx context.Context,
	cmd commands.CreateStockMovementCommand,
) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockCompleteStockMovementHandler struct{ mock.Mock }

func (m *MockCompleteStockMovementHandler) Handle(ctx context.Context, cmd commands.CompleteStockMovementCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCancelStockMovementHandler struct{ mock.Mock }

func (m *MockCancelStockMovementHandler) Handle(ctx context.Context, cmd commands.CancelStockMovementCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockGetLocationsHandler struct{ mock.Mock }

func (m *MockGetLocationsHandler) Handle(
	ctx context.Context,
	query queries.GetLocationsQuery,
) ([]queries.GetLocationsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetLocationsQueryResponse), args.Error(1)
}

type MockGetStockMovementsHandler struct{ mock.Mock }

func (m *MockGetStockMovementsHandler) Handle(
	ctx context.Context,
	query queries.GetStockMovementsQuery,
) ([]queries.GetStockMovementsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetStockMovementsQueryResponse), args.Error(1)
}
