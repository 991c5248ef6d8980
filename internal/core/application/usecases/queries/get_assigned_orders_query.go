package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
		"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
	)
)

// GetAssignedOrdersQuery lists the orders a delivery person still has to
// deliver.
type GetAssignedOrdersQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewGetAssignedOrdersQuery(actor kernel.Actor) (GetAssignedOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAssignedOrdersQuery{}, err
	}
	return GetAssignedOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

func (q GetAssignedOrdersQuery) Actor() kernel.Actor {
	return q.actor
}
