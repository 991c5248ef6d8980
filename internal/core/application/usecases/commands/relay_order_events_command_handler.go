package commands

import (
	"context"
	"fmt"

	"foodorder/internal/core/ports"

	"github.com/google/uuid"
)

// RelayOrderEventsCommandHandler moves events from the outbox to the event
// publisher. Events are marked published in the same transaction they were
// read in, after the publisher accepted them. A crash between the two
// publishes the batch again, so consumers must tolerate duplicates (the event
// id travels with every message).
type RelayOrderEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.OrderEventPublisher
}

func NewRelayOrderEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.OrderEventPublisher,
) RelayOrderEventsCommandHandler {
	return RelayOrderEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the number of events published.
func (h *RelayOrderEventsCommandHandler) Handle(ctx context.Context, cmd RelayOrderEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OrderEventOutbox()
	events, err := outbox.ListUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, events...); err != nil {
		return 0, fmt.Errorf("publish order events: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}
	if err = outbox.MarkPublished(ctx, ids); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return len(events), nil
}
