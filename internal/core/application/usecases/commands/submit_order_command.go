package commands

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// CartItem is one requested menu item with its quantity.
type CartItem struct {
	ItemID   uint64
	Quantity int
}

// SubmitOrderCommand represents a customer's request to turn a cart into an order.
// Quantities of repeated items are merged and the items are kept sorted by id,
// so concurrent submissions reserve shared items in the same order.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(actor, "pho-place", []CartItem{
//	    {ItemID: 1, Quantity: 2},
//	    {ItemID: 4, Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid cart: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	actor          kernel.Actor
	restaurantSlug string
	items          []CartItem

	guard guard.ConstructorGuard
}

func NewSubmitOrderCommand(actor kernel.Actor, restaurantSlug string, items []CartItem) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRestaurantSlug(restaurantSlug),
		cmd.setItems(items),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SubmitOrderCommand) RestaurantSlug() string {
	return c.restaurantSlug
}

// Items returns the merged cart, sorted by item id.
func (c SubmitOrderCommand) Items() []CartItem {
	return slices.Clone(c.items)
}

func (c *SubmitOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *SubmitOrderCommand) setRestaurantSlug(slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return errs.NewValueIsRequiredError("restaurant")
	}
	c.restaurantSlug = slug
	return nil
}

func (c *SubmitOrderCommand) setItems(items []CartItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	merged := make(map[uint64]int, len(items))
	for _, item := range items {
		if item.ItemID == 0 {
			return errs.NewValueIsRequiredError("item id")
		}
		if err := menu.ValidateQuantity(item.Quantity); err != nil {
			return fmt.Errorf("item %d: %w", item.ItemID, err)
		}
		merged[item.ItemID] += item.Quantity
	}

	c.items = make([]CartItem, 0, len(merged))
	for id, qty := range merged {
		c.items = append(c.items, CartItem{ItemID: id, Quantity: qty})
	}
	slices.SortFunc(c.items, func(a, b CartItem) int {
		return cmp.Compare(a.ItemID, b.ItemID)
	})
	return nil
}
