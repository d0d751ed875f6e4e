package kernel

import "time"

// DomainEvent is a fact raised by an aggregate operation.
//
// Aggregates never buffer events: every constructor and state transition that
// raises one returns it to the caller, which is responsible for handing it to
// the outbox in the same transaction as the state change.
type DomainEvent interface {
	// EventType is the stable, dotted name used for routing, e.g. "location.blocked".
	EventType() string

	// AggregateType names the kind of aggregate that raised the event.
	AggregateType() string

	// Meta returns tenant, aggregate and time information common to all events.
	Meta() EventMeta
}

// EventMeta is embedded in every concrete event.
type EventMeta struct {
	TenantID    TenantID  `json:"tenantId"`
	AggregateID UUID      `json:"aggregateId"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// NewEventMeta builds the common part of an event. The time is stored in UTC.
func NewEventMeta(tenantID TenantID, aggregateID UUID, at time.Time) EventMeta {
	return EventMeta{
		TenantID:    tenantID,
		AggregateID: aggregateID,
		OccurredAt:  at.UTC(),
	}
}

func (m EventMeta) Meta() EventMeta {
	return m
}
