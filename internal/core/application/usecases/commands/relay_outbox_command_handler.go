package commands

import (
	"context"
	"time"

	"warehouse/internal/core/ports"
)

// RelayOutboxResult counts what one relay run did. Abandoned is the part of
// Failed that used up ports.MaxDeliveryAttempts and will not be retried.
type RelayOutboxResult struct {
	Published int
	Failed    int
	Abandoned int
}

// RelayOutboxCommandHandler moves pending outbox messages to the event
// publisher. Delivery is at-least-once: a message is marked published only
// after the publisher accepted it, and a failed publish leaves it pending
// with its attempt counter increased until it reaches
// ports.MaxDeliveryAttempts.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle publishes one batch. Publish failures are counted, not returned;
// only storage failures abort the run.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayOutboxResult, error) {
	if err := cmd.Validate(); err != nil {
		return RelayOutboxResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.EventOutbox()

	pending, err := outbox.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return RelayOutboxResult{}, err
	}

	var result RelayOutboxResult
	for _, message := range pending {
		if publishErr := h.publisher.Publish(ctx, message); publishErr != nil {
			if err = outbox.MarkFailed(ctx, message.ID, publishErr.Error()); err != nil {
				return RelayOutboxResult{}, err
			}
			result.Failed++
			if message.Attempts+1 >= ports.MaxDeliveryAttempts {
				result.Abandoned++
			}
			continue
		}

		if err = outbox.MarkPublished(ctx, message.ID, time.Now()); err != nil {
			return RelayOutboxResult{}, err
		}
		result.Published++
	}

	if err = uow.Commit(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	return result, nil
}
