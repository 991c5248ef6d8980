package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetAssignedOrdersQueryHandler struct {
	reader summaryReader
}

func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{reader: summaryReader{db: db}}
}

// Handle returns the non-terminal orders assigned to the acting delivery
// person, oldest first.
func (h GetAssignedOrdersQueryHandler) Handle(ctx context.Context, query GetAssignedOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if err := requireRole(actor, kernel.RoleDeliveryPerson, "list assigned orders"); err != nil {
		return nil, err
	}

	rows, err := h.reader.find(ctx, `
		WHERE o.delivery_person = ? AND o.status NOT IN ?
		ORDER BY o.id
	`, actor.Identity(), terminalStatusValues())
	if err != nil {
		return nil, err
	}
	return summariesOf(rows), nil
}

func terminalStatusValues() []int {
	terminal := order.TerminalStatuses()
	values := make([]int, 0, len(terminal))
	for _, status := range terminal {
		values = append(values, int(status))
	}
	return values
}
