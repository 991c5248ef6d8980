package order

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a quantity of one menu item. The unit price and name are copied
// from the menu at submission so later menu edits do not change placed orders.
type LineItem struct {
	menuItemID  uint64
	name        string
	unitPrice   kernel.Price
	quantity    int
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

func NewLineItem(menuItemID uint64, name string, unitPrice kernel.Price, quantity int) (LineItem, error) {
	item := LineItem{
		menuItemID: menuItemID,
		name:       strings.TrimSpace(name),
		unitPrice:  unitPrice,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}

	var idErr, nameErr error
	if menuItemID == 0 {
		idErr = errs.NewValueIsRequiredError("menu item id")
	}
	if item.name == "" {
		nameErr = errs.NewValueIsRequiredError("line item name")
	}
	if err := errors.Join(idErr, nameErr, unitPrice.Validate(), menu.ValidateQuantity(quantity)); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// LineItemFromMenuItem snapshots item for quantity units.
func LineItemFromMenuItem(item *menu.MenuItem, quantity int) (LineItem, error) {
	if err := item.Validate(); err != nil {
		return LineItem{}, err
	}
	return NewLineItem(item.ID(), item.Name(), item.Price(), quantity)
}

func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l LineItem) MenuItemID() uint64 {
	return l.menuItemID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) UnitPrice() kernel.Price {
	return l.unitPrice
}

func (l LineItem) Quantity() int {
	return l.quantity
}

// OrderNumber is the number of the order the item was set on.
func (l LineItem) OrderNumber() kernel.OrderNumber {
	return l.orderNumber
}

func (l LineItem) Subtotal() decimal.Decimal {
	return l.unitPrice.Times(l.quantity)
}
