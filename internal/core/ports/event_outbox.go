package ports

import (
	"context"
	"encoding/json"
	"time"

	"warehouse/internal/core/domain/model/kernel"
)

// MaxDeliveryAttempts is how many failed publishes a message survives. A
// message that reached it stays unpublished in the outbox and is no longer
// returned by GetPending.
const MaxDeliveryAttempts = 10

// OutboxMessage is a domain event stored for asynchronous publication.
type OutboxMessage struct {
	ID            kernel.UUID
	TenantID      kernel.TenantID
	AggregateType string
	AggregateID   kernel.UUID
	EventType     string
	Payload       json.RawMessage
	OccurredAt    time.Time
	Attempts      int
}

// EventOutbox stores domain events in the same transaction as the aggregate
// change that raised them and hands them to the relay afterwards.
type EventOutbox interface {
	// Append stores events for later publication.
	Append(ctx context.Context, events ...kernel.DomainEvent) error

	// GetPending returns up to limit unpublished messages that have failed
	// fewer than MaxDeliveryAttempts times, oldest first.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error

	// MarkFailed records a failed attempt; the message stays pending.
	MarkFailed(ctx context.Context, id kernel.UUID, reason string) error
}

// EventPublisher delivers one outbox message to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
