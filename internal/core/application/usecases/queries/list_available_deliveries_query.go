package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrListAvailableDeliveriesQueryIsNotConstructed = errors.New(
		"ListAvailableDeliveriesQuery must be created via NewListAvailableDeliveriesQuery constructor",
	)
)

// ListAvailableDeliveriesQuery lists orders that are ready to be picked up and
// nobody has claimed yet.
type ListAvailableDeliveriesQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewListAvailableDeliveriesQuery(actor kernel.Actor) (ListAvailableDeliveriesQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListAvailableDeliveriesQuery{}, err
	}
	return ListAvailableDeliveriesQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableDeliveriesQueryIsNotConstructed)
}

func (q ListAvailableDeliveriesQuery) Actor() kernel.Actor {
	return q.actor
}
