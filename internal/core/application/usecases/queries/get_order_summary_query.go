package queries

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery reads the summary of an order without any access
// check. It is meant for rendering the result of a command that already
// authorized the caller.
type GetOrderSummaryQuery struct {
	ref   kernel.OrderRef
	guard guard.ConstructorGuard
}

func NewGetOrderSummaryQuery(ref kernel.OrderRef) (GetOrderSummaryQuery, error) {
	if err := ref.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}
	return GetOrderSummaryQuery{ref: ref, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

func (q GetOrderSummaryQuery) Ref() kernel.OrderRef {
	return q.ref
}

type GetOrderSummaryQueryHandler struct {
	reader summaryReader
}

func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{reader: summaryReader{db: db}}
}

func (h GetOrderSummaryQueryHandler) Handle(ctx context.Context, query GetOrderSummaryQuery) (OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return OrderSummary{}, err
	}
	row, err := findOne(ctx, h.reader, query.Ref())
	if err != nil {
		return OrderSummary{}, err
	}
	return row.OrderSummary, nil
}
