package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
		"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
	)
)

// GetOrderDetailsQuery retrieves one order for whoever is involved with it:
// its customer, the staff of its restaurant, its delivery person, or any
// delivery person while the order is still waiting for one.
type GetOrderDetailsQuery struct {
	actor kernel.Actor
	ref   kernel.OrderRef
	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(actor kernel.Actor, ref kernel.OrderRef) (GetOrderDetailsQuery, error) {
	if err := errors.Join(actor.Validate(), ref.Validate()); err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{actor: actor, ref: ref, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetOrderDetailsQuery) Ref() kernel.OrderRef {
	return q.ref
}
