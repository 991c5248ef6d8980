package queries

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandler struct {
	db     *gorm.DB
	reader summaryReader
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db, reader: summaryReader{db: db}}
}

// Handle returns the order summary if the actor may see the order. Anyone
// else gets the same not-found error as for a missing order.
func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return OrderSummary{}, err
	}

	row, err := findOne(ctx, h.reader, query.Ref())
	if err != nil {
		return OrderSummary{}, err
	}

	visible, err := h.visible(ctx, row, query.Actor())
	if err != nil {
		return OrderSummary{}, err
	}
	if !visible {
		return OrderSummary{}, errs.NewObjectNotFoundError("order", query.Ref().String())
	}
	return row.OrderSummary, nil
}

func (h GetOrderDetailsQueryHandler) visible(ctx context.Context, row summaryRow, actor kernel.Actor) (bool, error) {
	switch actor.Role() {
	case kernel.RoleCustomer:
		return row.customer == actor.Identity(), nil
	case kernel.RoleDeliveryPerson:
		if row.DeliveryPerson == nil {
			return !row.status.IsTerminal(), nil
		}
		return row.assignedTo(actor.Identity()), nil
	case kernel.RoleRestaurantEmployee:
		restaurantID, err := staffRestaurant(ctx, h.db, actor, "get order details")
		if errors.Is(err, errs.ErrUnauthorized) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return restaurantID == row.restaurantID, nil
	default:
		return false, nil
	}
}
