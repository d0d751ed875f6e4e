package redis_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"warehouse/internal/adapters/out/redis"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, channel string, message any) *goredis.IntCmd {
	args := m.Called(ctx, channel, message)
	return args.Get(0).(*goredis.IntCmd)
}

func outboxMessage() ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:            kernel.NewUUID(),
		TenantID:      kernel.NewTenantID(),
		AggregateType: "location",
		AggregateID:   kernel.NewUUID(),
		EventType:     "location.blocked",
		Payload:       json.RawMessage(`{"reason":"damaged rack"}`),
		OccurredAt:    time.Date(2025, 4, 2, 10, 30, 0, 0, time.UTC),
	}
}

func TestNewEventPublisher_Validation(t *testing.T) {
	_, err := redis.NewEventPublisher(nil, "warehouse.events")
	require.Error(t, err)

	_, err = redis.NewEventPublisher(new(MockPublisher), "")
	require.Error(t, err)
}

func TestEventPublisher_Publish_SendsEnvelope(t *testing.T) {
	client := new(MockPublisher)
	publisher, err := redis.NewEventPublisher(client, "warehouse.events")
	require.NoError(t, err)
	message := outboxMessage()

	var sent []byte
	client.On("Publish", mock.Anything, "warehouse.events", mock.AnythingOfType("[]uint8")).
		Run(func(args mock.Arguments) {
			sent = args.Get(2).([]byte)
		}).
		Return(goredis.NewIntResult(1, nil)).
		Once()

	err = publisher.Publish(t.Context(), message)

	require.NoError(t, err)
	client.AssertExpectations(t)

	var envelope redis.Envelope
	require.NoError(t, json.Unmarshal(sent, &envelope))
	assert.Equal(t, message.ID.String(), envelope.ID)
	assert.Equal(t, message.TenantID.String(), envelope.TenantID)
	assert.Equal(t, "location", envelope.AggregateType)
	assert.Equal(t, message.AggregateID.String(), envelope.AggregateID)
	assert.Equal(t, "location.blocked", envelope.EventType)
	assert.True(t, envelope.OccurredAt.Equal(message.OccurredAt))
	assert.JSONEq(t, `{"reason":"damaged rack"}`, string(envelope.Payload))
}

func TestEventPublisher_Publish_NoSubscribersIsNotAnError(t *testing.T) {
	client := new(MockPublisher)
	publisher, err := redis.NewEventPublisher(client, "warehouse.events")
	require.NoError(t, err)

	client.On("Publish", mock.Anything, "warehouse.events", mock.Anything).
		Return(goredis.NewIntResult(0, nil)).
		Once()

	require.NoError(t, publisher.Publish(t.Context(), outboxMessage()))
}

func TestEventPublisher_Publish_WrapsClientError(t *testing.T) {
	client := new(MockPublisher)
	publisher, err := redis.NewEventPublisher(client, "warehouse.events")
	require.NoError(t, err)
	connErr := errors.New("connection refused")

	client.On("Publish", mock.Anything, "warehouse.events", mock.Anything).
		Return(goredis.NewIntResult(0, connErr)).
		Once()

	err = publisher.Publish(t.Context(), outboxMessage())

	require.ErrorIs(t, err, connErr)
	assert.Contains(t, err.Error(), "publish outbox message")
}
