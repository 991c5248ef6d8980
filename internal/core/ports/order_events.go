package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	OrderSubmitted     = "order.submitted"
	OrderStatusChanged = "order.status_changed"
	OrderAssigned      = "order.assigned"
	OrderCanceled      = "order.canceled"
)

// OrderEvent is a change notification written to the outbox in the same
// transaction as the change it describes.
type OrderEvent struct {
	ID          uuid.UUID
	OrderNumber string
	Type        string
	Payload     []byte
	CreatedAt   time.Time
}

// OrderEventOutbox stores order events until they are relayed.
type OrderEventOutbox interface {
	// Add stores an unpublished event.
	Add(ctx context.Context, event OrderEvent) error

	// ListUnpublished returns up to limit unpublished events, oldest first.
	ListUnpublished(ctx context.Context, limit int) ([]OrderEvent, error)

	// MarkPublished flags the events as relayed.
	MarkPublished(ctx context.Context, ids []uuid.UUID) error
}

// OrderEventPublisher delivers order events to subscribers outside the service.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...OrderEvent) error
}
