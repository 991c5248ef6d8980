package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateInventoryCommandIsNotConstructed = errors.New(
	"UpdateInventoryCommand must be created via NewUpdateInventoryCommand constructor",
)

// UpdateInventoryCommand sets the absolute stock of a menu item of the staff
// member's restaurant and optionally toggles its availability.
type UpdateInventoryCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	itemID    uint64
	inventory int
	available *bool

	guard guard.ConstructorGuard
}

func NewUpdateInventoryCommand(actor kernel.Actor, itemID uint64, inventory int, available *bool) (UpdateInventoryCommand, error) {
	if err := actor.Validate(); err != nil {
		return UpdateInventoryCommand{}, err
	}
	if itemID == 0 {
		return UpdateInventoryCommand{}, errs.NewValueIsRequiredError("item id")
	}
	if inventory < 0 {
		return UpdateInventoryCommand{}, errs.NewValueIsOutOfRangeError("inventory", inventory, 0, "unbounded")
	}

	cmd := UpdateInventoryCommand{
		actor:     actor,
		itemID:    itemID,
		inventory: inventory,
		guard:     guard.NewConstructorGuard(),
	}
	if available != nil {
		a := *available
		cmd.available = &a
	}
	return cmd, nil
}

func (c UpdateInventoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInventoryCommandIsNotConstructed)
}

func (c UpdateInventoryCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateInventoryCommand) ItemID() uint64 {
	return c.itemID
}

func (c UpdateInventoryCommand) Inventory() int {
	return c.inventory
}

// Available returns the requested availability, or nil to keep it unchanged.
func (c UpdateInventoryCommand) Available() *bool {
	return c.available
}
