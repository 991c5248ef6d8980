package ports

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// ErrDuplicateOrderNumber is returned by OrderRepository.Add when another order
// already uses the number. The insert has been undone and the caller may retry
// with a fresh number inside the same transaction.
var ErrDuplicateOrderNumber = errors.New("order number is already taken")

// OrderRepository defines the persistence contract for order aggregates.
// Status and assignment writes are conditional so that concurrent requests
// against the same order cannot both succeed.
type OrderRepository interface {
	// Add persists a new order with its line items and records the id the
	// store assigned on the aggregate.
	// Returns ErrDuplicateOrderNumber when the number collides.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by numeric id or by order number.
	// Returns errs.ObjectNotFoundError when no order matches.
	Get(ctx context.Context, ref kernel.OrderRef) (*order.Order, error)

	// UpdateStatus stores the aggregate's current status only if the stored
	// status still equals expected.
	// Returns errs.InvalidTransitionError when another writer got there first.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// AssignDeliveryPerson stores the aggregate's delivery person only if the
	// stored order is still unassigned and not terminal.
	// Returns errs.InvalidTransitionError when the order was taken meanwhile.
	AssignDeliveryPerson(ctx context.Context, aggregate *order.Order) error
}
