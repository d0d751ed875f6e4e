// Package redis publishes outbox messages to a Redis pub/sub channel.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"warehouse/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// Publisher is the subset of the go-redis client used for publishing.
// *goredis.Client satisfies it.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *goredis.IntCmd
}

// Envelope is the JSON document delivered to subscribers. Payload is the
// event itself as stored in the outbox.
type Envelope struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenantId"`
	AggregateType string          `json:"aggregateType"`
	AggregateID   string          `json:"aggregateId"`
	EventType     string          `json:"eventType"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Payload       json.RawMessage `json:"payload"`
}

// EventPublisher implements ports.EventPublisher on top of Redis PUBLISH.
type EventPublisher struct {
	client  Publisher
	channel string
}

func NewEventPublisher(client Publisher, channel string) (*EventPublisher, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if channel == "" {
		return nil, fmt.Errorf("redis channel is required")
	}
	return &EventPublisher{client: client, channel: channel}, nil
}

// Publish sends message to the configured channel. Having no subscribers is
// not an error.
func (p *EventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	raw, err := json.Marshal(Envelope{
		ID:            message.ID.String(),
		TenantID:      message.TenantID.String(),
		AggregateType: message.AggregateType,
		AggregateID:   message.AggregateID.String(),
		EventType:     message.EventType,
		OccurredAt:    message.OccurredAt.UTC(),
		Payload:       message.Payload,
	})
	if err != nil {
		return fmt.Errorf("encode outbox message %s: %w", message.ID, err)
	}

	if err = p.client.Publish(ctx, p.channel, raw).Err(); err != nil {
		return fmt.Errorf("publish outbox message %s: %w", message.ID, err)
	}
	return nil
}

// NewClient connects to addr and verifies the connection with PING.
func NewClient(ctx context.Context, addr string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

var _ ports.EventPublisher = (*EventPublisher)(nil)
