package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetDeliveryHistoryQueryHandler struct {
	reader summaryReader
}

func NewGetDeliveryHistoryQueryHandler(db *gorm.DB) GetDeliveryHistoryQueryHandler {
	return GetDeliveryHistoryQueryHandler{reader: summaryReader{db: db}}
}

// Handle returns delivered orders of the acting delivery person, most recent
// first.
func (h GetDeliveryHistoryQueryHandler) Handle(ctx context.Context, query GetDeliveryHistoryQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if err := requireRole(actor, kernel.RoleDeliveryPerson, "view delivery history"); err != nil {
		return nil, err
	}

	rows, err := h.reader.find(ctx, `
		WHERE o.delivery_person = ? AND o.status = ?
		ORDER BY o.updated_at DESC, o.id DESC
	`, actor.Identity(), int(order.Delivered))
	if err != nil {
		return nil, err
	}
	return summariesOf(rows), nil
}
