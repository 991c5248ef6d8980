package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/logging"
)

// AdvanceOrderStatusCommandHandler applies one forward transition of the
// order lifecycle.
//
// The actor is reloaded from the user directory so that the restaurant a staff
// member works for comes from the directory. The status write is a
// compare-and-swap on the status the order was read in; if a concurrent
// request moved the order first, the write fails with InvalidTransition and
// nothing is stored.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.OrderLifecycle
}

func NewAdvanceOrderStatusCommandHandler(uowFactory UoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := directoryActor(ctx, uow.UserDirectory(), cmd.Actor(), cmd.Transition().String())
	if err != nil {
		return nil, err
	}

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.Ref())
	if err != nil {
		return nil, err
	}

	from, err := h.lifecycle.Apply(o, cmd.Transition(), actor)
	if err != nil {
		return nil, err
	}
	if err = repo.UpdateStatus(ctx, o, from); err != nil {
		return nil, err
	}

	event, err := newOrderEvent(ports.OrderStatusChanged, o, from)
	if err != nil {
		return nil, err
	}
	if err = uow.OrderEventOutbox().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("order status changed",
		"order", o.Number().String(),
		"from", from.String(),
		"to", o.Status().String(),
		"actor", actor.Identity(),
	)
	return o, nil
}
