package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/logging"
)

type UpdateInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewUpdateInventoryCommandHandler(uowFactory InventoryUoWFactory) UpdateInventoryCommandHandler {
	return UpdateInventoryCommandHandler{uowFactory: uowFactory}
}

// Handle stores the new stock count. Items of other restaurants are reported
// as not found.
func (h *UpdateInventoryCommandHandler) Handle(ctx context.Context, cmd UpdateInventoryCommand) (*menu.MenuItem, error) {
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

	actor, err := directoryActor(ctx, uow.UserDirectory(), cmd.Actor(), "update inventory")
	if err != nil {
		return nil, err
	}
	if !actor.Is(kernel.RoleRestaurantEmployee) || actor.RestaurantID() == 0 {
		return nil, errs.NewUnauthorizedError("update inventory", actor.Identity())
	}

	ledger := uow.InventoryLedger()
	item, err := ledger.Get(ctx, actor.RestaurantID(), cmd.ItemID())
	if err != nil {
		return nil, err
	}
	if err = item.SetInventory(cmd.Inventory(), cmd.Available()); err != nil {
		return nil, err
	}
	if err = ledger.SetInventory(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("inventory updated",
		"item", item.ID(),
		"inventory", item.Inventory(),
		"available", item.Available(),
		"actor", actor.Identity(),
	)
	return item, nil
}
