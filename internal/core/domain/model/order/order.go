package order

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyPersisted is returned when identity-changing calls are made
	// on an order that already has a store id.
	ErrOrderAlreadyPersisted = errors.New("order is already persisted")
)

// Order is the aggregate root for one customer order placed with one restaurant.
//
// It owns its line items and references, without owning, the customer, the
// restaurant and the delivery address. The store assigns the numeric id; the
// order number is chosen at construction and never changes once persisted.
type Order struct {
	id             uint64
	number         kernel.OrderNumber
	customer       string
	restaurantID   uint64
	addressID      uint64
	lineItems      []LineItem
	status         Status
	totalPrice     decimal.Decimal
	deliveryPerson *string

	guard guard.ConstructorGuard
}

// NewOrder creates an UNCONFIRMED order for customer at restaurantID,
// delivered to addressID.
//
// Example:
//
//	number, _ := kernel.GenerateOrderNumber()
//	line, _ := order.NewLineItem(itemID, "Margherita", price, 2)
//	o, err := order.NewOrder(number, "jane", restaurantID, addressID, []order.LineItem{line})
func NewOrder(
	number kernel.OrderNumber,
	customer string,
	restaurantID, addressID uint64,
	items []LineItem,
) (*Order, error) {
	o := &Order{
		status: Unconfirmed,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setCustomer(customer),
		o.setRestaurantID(restaurantID),
		o.setAddressID(addressID),
	); err != nil {
		return nil, err
	}

	if err := o.SetLineItems(items); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order read from the store. The total is recomputed
// from the line items.
func RestoreOrder(
	id uint64,
	number kernel.OrderNumber,
	customer string,
	restaurantID, addressID uint64,
	items []LineItem,
	status Status,
	deliveryPerson *string,
) (*Order, error) {
	o, err := NewOrder(number, customer, restaurantID, addressID, items)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	if deliveryPerson != nil && *deliveryPerson != "" {
		dp := *deliveryPerson
		o.deliveryPerson = &dp
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() uint64 {
	return o.id
}

func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// Customer is the username of the customer owning the order.
func (o *Order) Customer() string {
	return o.customer
}

func (o *Order) RestaurantID() uint64 {
	return o.restaurantID
}

func (o *Order) AddressID() uint64 {
	return o.addressID
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// DeliveryPerson returns the assigned delivery person's identity, or nil.
func (o *Order) DeliveryPerson() *string {
	if o.deliveryPerson == nil {
		return nil
	}
	dp := *o.deliveryPerson
	return &dp
}

func (o *Order) IsOwnedBy(customer string) bool {
	return o.customer == customer
}

func (o *Order) IsAssignedTo(identity string) bool {
	return o.deliveryPerson != nil && *o.deliveryPerson == identity
}

// SetLineItems replaces the line items, recomputes the total price and stamps
// the order number onto every item.
func (o *Order) SetLineItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}

	stamped := make([]LineItem, len(items))
	total := decimal.Zero
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		item.orderNumber = o.number
		stamped[i] = item
		total = total.Add(item.Subtotal())
	}

	o.lineItems = stamped
	o.totalPrice = total
	return nil
}

// SetID records the id the store assigned on insert.
func (o *Order) SetID(id uint64) error {
	if o.id != 0 {
		return ErrOrderAlreadyPersisted
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

// RenewNumber replaces the order number of an order that has not been
// persisted yet, e.g. after a uniqueness conflict.
func (o *Order) RenewNumber(number kernel.OrderNumber) error {
	if o.id != 0 {
		return ErrOrderAlreadyPersisted
	}
	if err := o.setNumber(number); err != nil {
		return err
	}
	return o.SetLineItems(o.lineItems)
}

// Transition moves the order to next if the lifecycle graph allows it. It does
// not check who is asking; use services.OrderLifecycle for that.
func (o *Order) Transition(next Status) error {
	if !o.status.CanTransitionTo(next) {
		return errs.NewInvalidTransitionError(
			fmt.Sprintf("move to %s", next),
			o.status.String(),
		)
	}
	o.status = next
	return nil
}

// AssignDeliveryPerson records identity as the order's delivery person. The
// first assignment wins and terminal orders cannot be assigned.
func (o *Order) AssignDeliveryPerson(identity string) error {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return errs.NewValueIsRequiredError("delivery person")
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError("assign", o.status.String())
	}
	if o.deliveryPerson != nil {
		return errs.NewInvalidTransitionErrorWithCause(
			"assign",
			o.status.String(),
			fmt.Errorf("already assigned to %s", *o.deliveryPerson),
		)
	}
	o.deliveryPerson = &identity
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customer string) error {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}

func (o *Order) setRestaurantID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("restaurant id")
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setAddressID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.addressID = id
	return nil
}
