package queries

import (
	"errors"
	"slices"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrListRestaurantOrdersQueryIsNotConstructed = errors.New(
		"ListRestaurantOrdersQuery must be created via NewListRestaurantOrdersQuery constructor",
	)
)

// ListRestaurantOrdersQuery is the kitchen view: orders of the staff member's
// restaurant, optionally narrowed to some statuses.
//
// Example:
//
//	query, err := NewListRestaurantOrdersQuery(actor, order.Unconfirmed, order.InKitchen)
type ListRestaurantOrdersQuery struct {
	actor    kernel.Actor
	statuses []order.Status
	guard    guard.ConstructorGuard
}

func NewListRestaurantOrdersQuery(actor kernel.Actor, statuses ...order.Status) (ListRestaurantOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListRestaurantOrdersQuery{}, err
	}
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return ListRestaurantOrdersQuery{}, err
		}
	}
	return ListRestaurantOrdersQuery{
		actor:    actor,
		statuses: slices.Clone(statuses),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantOrdersQueryIsNotConstructed)
}

func (q ListRestaurantOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// Statuses returns the status filter; empty means all statuses.
func (q ListRestaurantOrdersQuery) Statuses() []order.Status {
	return slices.Clone(q.statuses)
}
