package ports

import (
	"context"

	"foodorder/internal/core/domain/model/menu"
)

// InventoryLedger tracks the remaining stock of every menu item.
//
// Reserve and Release are single conditional statements, so two reservations
// racing for the last units of an item are serialized by the store and at most
// one of them succeeds.
type InventoryLedger interface {
	// Get returns the menu item itemID of restaurantID. An item that belongs to
	// another restaurant is reported as not found.
	Get(ctx context.Context, restaurantID, itemID uint64) (*menu.MenuItem, error)

	// Reserve decrements the stock of itemID by quantity.
	// Returns errs.InsufficientStockError when fewer units are left and
	// errs.ObjectNotFoundError when the item does not exist.
	Reserve(ctx context.Context, itemID uint64, quantity int) error

	// Release returns quantity units of itemID to stock.
	Release(ctx context.Context, itemID uint64, quantity int) error

	// SetInventory stores the item's absolute stock count and availability.
	SetInventory(ctx context.Context, item *menu.MenuItem) error
}
