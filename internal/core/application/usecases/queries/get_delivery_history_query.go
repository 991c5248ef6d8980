package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetDeliveryHistoryQueryIsNotConstructed = errors.New(
		"GetDeliveryHistoryQuery must be created via NewGetDeliveryHistoryQuery constructor",
	)
)

// GetDeliveryHistoryQuery lists the orders a delivery person has delivered.
type GetDeliveryHistoryQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewGetDeliveryHistoryQuery(actor kernel.Actor) (GetDeliveryHistoryQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetDeliveryHistoryQuery{}, err
	}
	return GetDeliveryHistoryQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryHistoryQueryIsNotConstructed)
}

func (q GetDeliveryHistoryQuery) Actor() kernel.Actor {
	return q.actor
}
