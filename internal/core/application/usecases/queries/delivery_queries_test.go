package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(summaries []queries.OrderSummary) []string {
	result := make([]string, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, s.Number)
	}
	return result
}

func TestDeliveryQueries(t *testing.T) {
	w := newWorld(t)
	ready := w.place(t, order.ReadyForDelivery, "")
	w.place(t, order.InKitchen, "")
	pickingUp := w.place(t, order.PickingUp, "alex")
	transport := w.place(t, order.Transport, "alex")
	w.place(t, order.Transport, "bob")
	firstDelivered := w.place(t, order.Delivered, "alex")
	secondDelivered := w.place(t, order.Delivered, "alex")
	w.place(t, order.Canceled, "")

	alex := actor(t, "alex", kernel.RoleDeliveryPerson)

	t.Run("assigned orders", func(t *testing.T) {
		query, err := queries.NewGetAssignedOrdersQuery(alex)
		require.NoError(t, err)

		summaries, err := queries.NewGetAssignedOrdersQueryHandler(w.db).Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Equal(t, []string{pickingUp.Number().String(), transport.Number().String()}, numbers(summaries))
	})

	t.Run("delivery history", func(t *testing.T) {
		query, err := queries.NewGetDeliveryHistoryQuery(alex)
		require.NoError(t, err)

		summaries, err := queries.NewGetDeliveryHistoryQueryHandler(w.db).Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Equal(t, []string{secondDelivered.Number().String(), firstDelivered.Number().String()}, numbers(summaries))
		for _, s := range summaries {
			assert.Equal(t, "DELIVERED", s.Status)
			assert.NotEmpty(t, s.LineItems)
		}
	})

	t.Run("available deliveries", func(t *testing.T) {
		query, err := queries.NewListAvailableDeliveriesQuery(actor(t, "bob", kernel.RoleDeliveryPerson))
		require.NoError(t, err)

		summaries, err := queries.NewListAvailableDeliveriesQueryHandler(w.db).Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Equal(t, []string{ready.Number().String()}, numbers(summaries))
	})

	t.Run("only delivery persons", func(t *testing.T) {
		jane := actor(t, "jane", kernel.RoleCustomer)

		assignedQuery, err := queries.NewGetAssignedOrdersQuery(jane)
		require.NoError(t, err)
		_, err = queries.NewGetAssignedOrdersQueryHandler(w.db).Handle(t.Context(), assignedQuery)
		require.ErrorIs(t, err, errs.ErrUnauthorized)

		historyQuery, err := queries.NewGetDeliveryHistoryQuery(jane)
		require.NoError(t, err)
		_, err = queries.NewGetDeliveryHistoryQueryHandler(w.db).Handle(t.Context(), historyQuery)
		require.ErrorIs(t, err, errs.ErrUnauthorized)

		availableQuery, err := queries.NewListAvailableDeliveriesQuery(jane)
		require.NoError(t, err)
		_, err = queries.NewListAvailableDeliveriesQueryHandler(w.db).Handle(t.Context(), availableQuery)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("nothing assigned yet", func(t *testing.T) {
		query, err := queries.NewGetAssignedOrdersQuery(actor(t, "carol", kernel.RoleDeliveryPerson))
		require.NoError(t, err)

		summaries, err := queries.NewGetAssignedOrdersQueryHandler(w.db).Handle(t.Context(), query)
		require.NoError(t, err)
		assert.Empty(t, summaries)
		assert.NotNil(t, summaries)
	})
}
