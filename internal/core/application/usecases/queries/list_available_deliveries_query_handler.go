package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type ListAvailableDeliveriesQueryHandler struct {
	reader summaryReader
}

func NewListAvailableDeliveriesQueryHandler(db *gorm.DB) ListAvailableDeliveriesQueryHandler {
	return ListAvailableDeliveriesQueryHandler{reader: summaryReader{db: db}}
}

func (h ListAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableDeliveriesQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireRole(query.Actor(), kernel.RoleDeliveryPerson, "list available deliveries"); err != nil {
		return nil, err
	}

	rows, err := h.reader.find(ctx, `
		WHERE o.delivery_person IS NULL AND o.status = ?
		ORDER BY o.id
	`, int(order.ReadyForDelivery))
	if err != nil {
		return nil, err
	}
	return summariesOf(rows), nil
}
