// Package outboxrepo stores domain events in the outbox_messages table so
// they are committed atomically with the aggregate change that raised them.
package outboxrepo

import (
	"encoding/json"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxMessageDTO is the row of the outbox_messages table. PublishedAt is
// NULL while the message is pending.
type OutboxMessageDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID  `gorm:"type:uuid;not null"`
	AggregateType string     `gorm:"type:varchar(50);not null"`
	AggregateID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	EventType     string     `gorm:"type:varchar(100);not null"`
	Payload       string     `gorm:"type:jsonb;not null"`
	OccurredAt    time.Time  `gorm:"not null;index:ix_outbox_pending,priority:2"`
	PublishedAt   *time.Time `gorm:"index:ix_outbox_pending,priority:1"`
	Attempts      int        `gorm:"not null;default:0"`
	LastError     string     `gorm:"type:text;not null;default:''"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromEvent(event kernel.DomainEvent) (OutboxMessageDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxMessageDTO{}, err
	}

	meta := event.Meta()
	return OutboxMessageDTO{
		ID:            kernel.NewUUID().Bytes(),
		TenantID:      meta.TenantID.UUID().Bytes(),
		AggregateType: event.AggregateType(),
		AggregateID:   meta.AggregateID.Bytes(),
		EventType:     event.EventType(),
		Payload:       string(payload),
		OccurredAt:    meta.OccurredAt,
	}, nil
}

func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	tenantUUID, err := kernel.UUIDFromGoogle(dto.TenantID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	tenantID, err := kernel.TenantIDFromUUID(tenantUUID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromGoogle(dto.AggregateID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:            id,
		TenantID:      tenantID,
		AggregateType: dto.AggregateType,
		AggregateID:   aggregateID,
		EventType:     dto.EventType,
		Payload:       json.RawMessage(dto.Payload),
		OccurredAt:    dto.OccurredAt.UTC(),
		Attempts:      dto.Attempts,
	}, nil
}
