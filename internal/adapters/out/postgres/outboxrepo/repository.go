package outboxrepo

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxErrorLength = 1000

// GormEventOutbox implements ports.EventOutbox using GORM.
type GormEventOutbox struct {
	db *gorm.DB
}

func NewGormEventOutbox(db *gorm.DB) *GormEventOutbox {
	return &GormEventOutbox{db: db}
}

func (o *GormEventOutbox) Append(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxMessageDTO, 0, len(events))
	for _, event := range events {
		dto, err := fromEvent(event)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return o.db.WithContext(ctx).Create(&dtos).Error
}

// GetPending locks the returned rows until the surrounding transaction ends.
// Rows already locked by a concurrent relay are skipped, as are messages that
// used up ports.MaxDeliveryAttempts.
func (o *GormEventOutbox) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("limit", fmt.Errorf("%d is not greater than 0", limit))
	}

	var dtos []OutboxMessageDTO
	err := o.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL AND attempts < ?", ports.MaxDeliveryAttempts).
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		message, err := toMessage(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func (o *GormEventOutbox) MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error {
	published := at.UTC()
	return o.update(ctx, id, map[string]any{
		"published_at": &published,
		"attempts":     gorm.Expr("attempts + 1"),
		"last_error":   "",
	})
}

func (o *GormEventOutbox) MarkFailed(ctx context.Context, id kernel.UUID, reason string) error {
	if len(reason) > maxErrorLength {
		reason = reason[:maxErrorLength]
	}
	return o.update(ctx, id, map[string]any{
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": reason,
	})
}

func (o *GormEventOutbox) update(ctx context.Context, id kernel.UUID, columns map[string]any) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := o.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ? AND published_at IS NULL", id.Bytes()).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outboxMessage", id.String())
	}

	return nil
}
