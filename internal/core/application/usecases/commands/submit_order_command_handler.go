package commands

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/logging"
)

// MaxOrderNumberAttempts bounds how many generated numbers a submission tries
// before giving up on uniqueness conflicts.
const MaxOrderNumberAttempts = 5

// SubmitOrderCommandHandler turns a customer's cart into an UNCONFIRMED order.
//
// Everything happens in one unit of work: the restaurant and customer lookups,
// a reservation per cart item, the order insert and its outbox event. Any
// failure rolls the whole transaction back, which also returns stock reserved
// for earlier items of the same cart.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, kernel.GenerateOrderNumber)
//	o, err := handler.Handle(ctx, cmd)
//	if errs.KindOf(err) == errs.KindInsufficientStock {
//	    // nothing was reserved, nothing was stored
//	}
type SubmitOrderCommandHandler struct {
	uowFactory     UoWFactory
	generateNumber kernel.OrderNumberGenerator
}

// NewSubmitOrderCommandHandler creates the handler. A nil generator falls back
// to kernel.GenerateOrderNumber.
func NewSubmitOrderCommandHandler(uowFactory UoWFactory, generateNumber kernel.OrderNumberGenerator) SubmitOrderCommandHandler {
	if generateNumber == nil {
		generateNumber = kernel.GenerateOrderNumber
	}
	return SubmitOrderCommandHandler{
		uowFactory:     uowFactory,
		generateNumber: generateNumber,
	}
}

func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !actor.Is(kernel.RoleCustomer) {
		return nil, errs.NewUnauthorizedErrorWithCause(
			"submit an order",
			actor.Identity(),
			fmt.Errorf("requires role %s, has %s", kernel.RoleCustomer, actor.Role()),
		)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurant, err := uow.RestaurantCatalog().GetBySlug(ctx, cmd.RestaurantSlug())
	if err != nil {
		return nil, err
	}

	customer, err := uow.UserDirectory().GetByUsername(ctx, actor.Identity())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewUnauthorizedErrorWithCause("submit an order", actor.Identity(), err)
		}
		return nil, err
	}
	if customer.Role != kernel.RoleCustomer {
		return nil, errs.NewUnauthorizedError("submit an order", actor.Identity())
	}
	if customer.AddressID == nil {
		return nil, errs.NewValueIsRequiredError("delivery address")
	}

	lines, err := h.reserve(ctx, uow.InventoryLedger(), restaurant, cmd.Items())
	if err != nil {
		return nil, err
	}

	number, err := h.generateNumber()
	if err != nil {
		return nil, err
	}
	o, err := order.NewOrder(number, customer.Username, restaurant.ID, *customer.AddressID, lines)
	if err != nil {
		return nil, err
	}

	if err = h.insert(ctx, uow.OrderRepository(), o); err != nil {
		return nil, err
	}

	event, err := newOrderEvent(ports.OrderSubmitted, o, order.Unknown)
	if err != nil {
		return nil, err
	}
	if err = uow.OrderEventOutbox().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("order submitted",
		"order", o.Number().String(),
		"restaurant", restaurant.Slug,
		"customer", o.Customer(),
		"total", o.TotalPrice().StringFixed(2),
	)
	return o, nil
}

// reserve takes stock for every cart item and snapshots the line items.
func (h *SubmitOrderCommandHandler) reserve(
	ctx context.Context,
	ledger ports.InventoryLedger,
	restaurant ports.Restaurant,
	items []CartItem,
) ([]order.LineItem, error) {
	lines := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		menuItem, err := ledger.Get(ctx, restaurant.ID, item.ItemID)
		if err != nil {
			return nil, err
		}
		if !menuItem.Available() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"menu item",
				fmt.Errorf("%s is not available at %s", menuItem.Name(), restaurant.Slug),
			)
		}

		if err = ledger.Reserve(ctx, menuItem.ID(), item.Quantity); err != nil {
			return nil, err
		}

		line, err := order.LineItemFromMenuItem(menuItem, item.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// insert stores o, drawing a fresh number whenever the current one is taken.
func (h *SubmitOrderCommandHandler) insert(ctx context.Context, repo ports.OrderRepository, o *order.Order) error {
	for attempt := 1; ; attempt++ {
		err := repo.Add(ctx, o)
		if !errors.Is(err, ports.ErrDuplicateOrderNumber) {
			return err
		}
		if attempt == MaxOrderNumberAttempts {
			return fmt.Errorf("no free order number after %d attempts: %w", attempt, err)
		}

		logging.FromContext(ctx).Warn("order number taken, retrying",
			"order", o.Number().String(),
			"attempt", attempt,
		)
		number, genErr := h.generateNumber()
		if genErr != nil {
			return genErr
		}
		if err = o.RenewNumber(number); err != nil {
			return err
		}
	}
}
