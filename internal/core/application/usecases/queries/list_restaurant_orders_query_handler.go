package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListRestaurantOrdersQueryHandler struct {
	db     *gorm.DB
	reader summaryReader
}

func NewListRestaurantOrdersQueryHandler(db *gorm.DB) ListRestaurantOrdersQueryHandler {
	return ListRestaurantOrdersQueryHandler{db: db, reader: summaryReader{db: db}}
}

func (h ListRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurantID, err := staffRestaurant(ctx, h.db, query.Actor(), "list restaurant orders")
	if err != nil {
		return nil, err
	}

	filter := "WHERE o.restaurant_id = ?"
	args := []any{restaurantID}
	if statuses := query.Statuses(); len(statuses) > 0 {
		values := make([]int, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, int(status))
		}
		filter += " AND o.status IN ?"
		args = append(args, values)
	}

	rows, err := h.reader.find(ctx, filter+" ORDER BY o.id", args...)
	if err != nil {
		return nil, err
	}
	return summariesOf(rows), nil
}
