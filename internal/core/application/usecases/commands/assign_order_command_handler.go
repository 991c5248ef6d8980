package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/logging"
)

// AssignOrderCommandHandler records the delivery person of an order. The
// first assignment wins: the store only accepts it while the order is still
// unassigned and not terminal.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.OrderLifecycle
}

func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*order.Order, error) {
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

	users := uow.UserDirectory()
	actor, err := directoryActor(ctx, users, cmd.Actor(), "assign a delivery person")
	if err != nil {
		return nil, err
	}

	assignee, err := users.GetByUsername(ctx, cmd.DeliveryPerson())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause("delivery person", err)
		}
		return nil, err
	}
	assigneeActor, err := assignee.Actor()
	if err != nil {
		return nil, err
	}

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.Ref())
	if err != nil {
		return nil, err
	}

	if err = h.lifecycle.Assign(o, actor, assigneeActor); err != nil {
		return nil, err
	}
	if err = repo.AssignDeliveryPerson(ctx, o); err != nil {
		return nil, err
	}

	event, err := newOrderEvent(ports.OrderAssigned, o, order.Unknown)
	if err != nil {
		return nil, err
	}
	if err = uow.OrderEventOutbox().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("order assigned",
		"order", o.Number().String(),
		"delivery_person", assignee.Username,
		"actor", actor.Identity(),
	)
	return o, nil
}
