// Package menu holds the MenuItem entity: a restaurant's dish together with the
// stock count the inventory ledger reserves from.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

// MenuItem is a dish offered by one restaurant.
//
// Invariants:
//   - inventory is never negative
//   - a reservation larger than the current inventory is rejected without change
type MenuItem struct {
	id           uint64
	restaurantID uint64
	name         string
	price        kernel.Price
	inventory    int
	available    bool

	guard guard.ConstructorGuard
}

// NewMenuItem creates an item that is not yet persisted (id 0).
func NewMenuItem(restaurantID uint64, name string, price kernel.Price, inventory int) (*MenuItem, error) {
	return RestoreMenuItem(0, restaurantID, name, price, inventory, true)
}

// RestoreMenuItem rebuilds an item loaded from the store.
func RestoreMenuItem(
	id, restaurantID uint64,
	name string,
	price kernel.Price,
	inventory int,
	available bool,
) (*MenuItem, error) {
	item := &MenuItem{
		id:        id,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setPrice(price),
		item.setInventory(inventory),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) ID() uint64 {
	return m.id
}

func (m *MenuItem) RestaurantID() uint64 {
	return m.restaurantID
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Price() kernel.Price {
	return m.price
}

func (m *MenuItem) Inventory() int {
	return m.inventory
}

func (m *MenuItem) Available() bool {
	return m.available
}

// BelongsTo reports whether the item is on restaurantID's menu.
func (m *MenuItem) BelongsTo(restaurantID uint64) bool {
	return m.restaurantID == restaurantID
}

// Reserve takes quantity units out of stock.
func (m *MenuItem) Reserve(quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	if quantity > m.inventory {
		return errs.NewInsufficientStockError(m.id, quantity, m.inventory)
	}
	m.inventory -= quantity
	return nil
}

// Release puts quantity units back into stock.
func (m *MenuItem) Release(quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	m.inventory += quantity
	return nil
}

// SetInventory replaces the stock count and, when available is non-nil, the
// availability flag.
func (m *MenuItem) SetInventory(count int, available *bool) error {
	if err := m.setInventory(count); err != nil {
		return err
	}
	if available != nil {
		m.available = *available
	}
	return nil
}

// ValidateQuantity checks a requested or reserved quantity.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

func (m *MenuItem) setRestaurantID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("restaurant id")
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *MenuItem) setInventory(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("inventory", fmt.Errorf("%d is negative", count))
	}
	m.inventory = count
	return nil
}
