package commands

import (
	"context"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/logging"
)

// CancelOrderCommandHandler cancels an UNCONFIRMED order on behalf of its
// customer and returns the reserved stock to the ledger.
//
// The lookup is owner-scoped: a customer asking for somebody else's order gets
// the same not-found error as for an order that does not exist.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.OrderLifecycle
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	actor := cmd.Actor()
	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.Ref())
	if err != nil {
		return nil, err
	}
	if actor.Is(kernel.RoleCustomer) && !o.IsOwnedBy(actor.Identity()) {
		return nil, errs.NewObjectNotFoundError("order", cmd.Ref().String())
	}

	from, err := h.lifecycle.Apply(o, services.TransitionCancel, actor)
	if err != nil {
		return nil, err
	}
	if err = repo.UpdateStatus(ctx, o, from); err != nil {
		return nil, err
	}

	ledger := uow.InventoryLedger()
	for _, line := range o.LineItems() {
		if err = ledger.Release(ctx, line.MenuItemID(), line.Quantity()); err != nil {
			return nil, fmt.Errorf("release item %d: %w", line.MenuItemID(), err)
		}
	}

	event, err := newOrderEvent(ports.OrderCanceled, o, from)
	if err != nil {
		return nil, err
	}
	if err = uow.OrderEventOutbox().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("order canceled", "order", o.Number().String(), "customer", actor.Identity())
	return o, nil
}
