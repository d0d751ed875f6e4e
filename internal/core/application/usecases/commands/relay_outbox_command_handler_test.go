package commands_test

import (
	"errors"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outboxMessage(eventType string) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:            kernel.NewUUID(),
		TenantID:      kernel.NewTenantID(),
		AggregateType: "location",
		AggregateID:   kernel.NewUUID(),
		EventType:     eventType,
		Payload:       []byte(`{}`),
	}
}

func TestRelayOutboxCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)

	delivered := outboxMessage("location.created")
	rejected := outboxMessage("location.blocked")

	outbox := new(MockEventOutbox)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	factory := new(MockOutboxUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EventOutbox").Return(outbox).Once(),
		outbox.On("GetPending", ctx, 10).Return([]ports.OutboxMessage{delivered, rejected}, nil).Once(),
		publisher.On("Publish", ctx, delivered).Return(nil).Once(),
		outbox.On("MarkPublished", ctx, delivered.ID, mock.AnythingOfType("time.Time")).Return(nil).Once(),
		publisher.On("Publish", ctx, rejected).Return(errors.New("broker down")).Once(),
		outbox.On("MarkFailed", ctx, rejected.ID, "broker down").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRelayOutboxCommandHandler(factory, publisher)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.RelayOutboxResult{Published: 1, Failed: 1}, result)
	outbox.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRelayOutboxCommandHandler_Handle_LastAttemptIsAbandoned(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)

	retried := outboxMessage("location.created")
	retried.Attempts = ports.MaxDeliveryAttempts - 2
	exhausted := outboxMessage("location.blocked")
	exhausted.Attempts = ports.MaxDeliveryAttempts - 1

	outbox := new(MockEventOutbox)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	factory := new(MockOutboxUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EventOutbox").Return(outbox).Once(),
		outbox.On("GetPending", ctx, 10).Return([]ports.OutboxMessage{retried, exhausted}, nil).Once(),
		publisher.On("Publish", ctx, retried).Return(errors.New("broker down")).Once(),
		outbox.On("MarkFailed", ctx, retried.ID, "broker down").Return(nil).Once(),
		publisher.On("Publish", ctx, exhausted).Return(errors.New("broker down")).Once(),
		outbox.On("MarkFailed", ctx, exhausted.ID, "broker down").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRelayOutboxCommandHandler(factory, publisher)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.RelayOutboxResult{Failed: 2, Abandoned: 1}, result)
	outbox.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRelayOutboxCommandHandler_Handle_Empty(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayOutboxCommand(5)
	require.NoError(t, err)

	outbox := new(MockEventOutbox)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	factory := new(MockOutboxUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EventOutbox").Return(outbox).Once(),
		outbox.On("GetPending", ctx, 5).Return([]ports.OutboxMessage{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRelayOutboxCommandHandler(factory, publisher)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, result)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestRelayOutboxCommandHandler_Handle_StorageErrorAborts(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRelayOutboxCommand(5)
	require.NoError(t, err)

	message := outboxMessage("location.reserved")
	outbox := new(MockEventOutbox)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)
	factory := new(MockOutboxUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EventOutbox").Return(outbox).Once(),
		outbox.On("GetPending", ctx, 5).Return([]ports.OutboxMessage{message}, nil).Once(),
		publisher.On("Publish", ctx, message).Return(nil).Once(),
		outbox.On("MarkPublished", ctx, message.ID, mock.Anything).Return(errors.New("update failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRelayOutboxCommandHandler(factory, publisher)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "update failed")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewRelayOutboxCommand_BatchSizeOutOfRange(t *testing.T) {
	for _, size := range []int{0, -1, commands.MaxOutboxBatchSize + 1} {
		_, err := commands.NewRelayOutboxCommand(size)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}
