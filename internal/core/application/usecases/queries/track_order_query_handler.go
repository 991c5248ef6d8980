package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler answers with the summary of an order owned by the
// requesting customer. Orders of other customers are reported as not found.
type TrackOrderQueryHandler struct {
	reader summaryReader
}

func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{reader: summaryReader{db: db}}
}

func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return OrderSummary{}, err
	}

	actor := query.Actor()
	if err := requireRole(actor, kernel.RoleCustomer, "track order"); err != nil {
		return OrderSummary{}, err
	}

	row, err := findOne(ctx, h.reader, query.Ref())
	if err != nil {
		return OrderSummary{}, err
	}
	if row.customer != actor.Identity() {
		return OrderSummary{}, errs.NewObjectNotFoundError("order", query.Ref().String())
	}
	return row.OrderSummary, nil
}
