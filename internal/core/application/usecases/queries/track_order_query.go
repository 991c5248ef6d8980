package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery lets a customer follow one of their own orders.
//
// Example:
//
//	query, err := NewTrackOrderQuery(actor, ref)
//	handler := NewTrackOrderQueryHandler(db)
//	summary, err := handler.Handle(ctx, query)
type TrackOrderQuery struct {
	actor kernel.Actor
	ref   kernel.OrderRef
	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(actor kernel.Actor, ref kernel.OrderRef) (TrackOrderQuery, error) {
	if err := errors.Join(actor.Validate(), ref.Validate()); err != nil {
		return TrackOrderQuery{}, err
	}
	return TrackOrderQuery{actor: actor, ref: ref, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) Actor() kernel.Actor {
	return q.actor
}

func (q TrackOrderQuery) Ref() kernel.OrderRef {
	return q.ref
}
