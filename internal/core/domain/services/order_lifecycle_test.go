package services_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const restaurantID = 3

func actor(t *testing.T, identity string, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(identity, role)
	require.NoError(t, err)
	return a
}

func chef(t *testing.T, restaurant uint64) kernel.Actor {
	return actor(t, "chef", kernel.RoleRestaurantEmployee).WithRestaurant(restaurant)
}

func orderIn(t *testing.T, status order.Status, deliveryPerson string) *order.Order {
	t.Helper()
	number, err := kernel.NewOrderNumber("AB12CD34")
	require.NoError(t, err)
	price, err := kernel.PriceFromString("5.00")
	require.NoError(t, err)
	line, err := order.NewLineItem(1, "Pho", price, 1)
	require.NoError(t, err)

	var dp *string
	if deliveryPerson != "" {
		dp = &deliveryPerson
	}
	o, err := order.RestoreOrder(1, number, "jane", restaurantID, 9, []order.LineItem{line}, status, dp)
	require.NoError(t, err)
	return o
}

func TestOrderLifecycle_TransitionTable(t *testing.T) {
	tests := []struct {
		transition services.Transition
		from, to   order.Status
		actor      func(t *testing.T) kernel.Actor
	}{
		{services.TransitionCancel, order.Unconfirmed, order.Canceled,
			func(t *testing.T) kernel.Actor { return actor(t, "jane", kernel.RoleCustomer) }},
		{services.TransitionStartCooking, order.Unconfirmed, order.InKitchen,
			func(t *testing.T) kernel.Actor { return chef(t, restaurantID) }},
		{services.TransitionMarkReady, order.InKitchen, order.ReadyForDelivery,
			func(t *testing.T) kernel.Actor { return chef(t, restaurantID) }},
		{services.TransitionPickUp, order.ReadyForDelivery, order.PickingUp,
			func(t *testing.T) kernel.Actor { return actor(t, "alex", kernel.RoleDeliveryPerson) }},
		{services.TransitionTransport, order.PickingUp, order.Transport,
			func(t *testing.T) kernel.Actor { return actor(t, "alex", kernel.RoleDeliveryPerson) }},
		{services.TransitionDeliver, order.Transport, order.Delivered,
			func(t *testing.T) kernel.Actor { return actor(t, "alex", kernel.RoleDeliveryPerson) }},
	}

	lifecycle := services.NewOrderLifecycle()
	for _, tt := range tests {
		t.Run(tt.transition.String(), func(t *testing.T) {
			assert.Equal(t, tt.from, tt.transition.From())
			assert.Equal(t, tt.to, tt.transition.To())

			o := orderIn(t, tt.from, "alex")
			from, err := lifecycle.Apply(o, tt.transition, tt.actor(t))
			require.NoError(t, err)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, o.Status())

			// the same edge twice fails and leaves the state alone
			_, err = lifecycle.Apply(o, tt.transition, tt.actor(t))
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, tt.to, o.Status())
		})
	}
}

func TestOrderLifecycle_Authorization(t *testing.T) {
	lifecycle := services.NewOrderLifecycle()

	t.Run("delivery person who is not the assignee", func(t *testing.T) {
		o := orderIn(t, order.Transport, "alex")
		_, err := lifecycle.Apply(o, services.TransitionDeliver, actor(t, "bob", kernel.RoleDeliveryPerson))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, order.Transport, o.Status())
	})

	t.Run("unassigned order cannot be picked up", func(t *testing.T) {
		o := orderIn(t, order.ReadyForDelivery, "")
		_, err := lifecycle.Apply(o, services.TransitionPickUp, actor(t, "alex", kernel.RoleDeliveryPerson))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("staff of another restaurant", func(t *testing.T) {
		o := orderIn(t, order.Unconfirmed, "")
		_, err := lifecycle.Apply(o, services.TransitionStartCooking, chef(t, restaurantID+1))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, order.Unconfirmed, o.Status())
	})

	t.Run("staff without affiliation", func(t *testing.T) {
		o := orderIn(t, order.Unconfirmed, "")
		_, err := lifecycle.Apply(o, services.TransitionStartCooking, actor(t, "chef", kernel.RoleRestaurantEmployee))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("wrong role", func(t *testing.T) {
		o := orderIn(t, order.Unconfirmed, "")
		_, err := lifecycle.Apply(o, services.TransitionCancel, actor(t, "jane", kernel.RoleDeliveryPerson))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("other customer", func(t *testing.T) {
		o := orderIn(t, order.Unconfirmed, "")
		_, err := lifecycle.Apply(o, services.TransitionCancel, actor(t, "eve", kernel.RoleCustomer))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("authorization is checked before status", func(t *testing.T) {
		o := orderIn(t, order.Delivered, "alex")
		_, err := lifecycle.Apply(o, services.TransitionDeliver, actor(t, "bob", kernel.RoleDeliveryPerson))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("cancel after the kitchen started", func(t *testing.T) {
		o := orderIn(t, order.InKitchen, "")
		_, err := lifecycle.Apply(o, services.TransitionCancel, actor(t, "jane", kernel.RoleCustomer))
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.InKitchen, o.Status())
	})

	t.Run("unknown transition", func(t *testing.T) {
		o := orderIn(t, order.Unconfirmed, "")
		_, err := lifecycle.Apply(o, services.Transition(99), actor(t, "jane", kernel.RoleCustomer))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "unknown transition", services.Transition(99).String())
	})
}

func TestOrderLifecycle_NeverReachesDeliveredEarly(t *testing.T) {
	lifecycle := services.NewOrderLifecycle()
	alex := actor(t, "alex", kernel.RoleDeliveryPerson)

	for _, status := range []order.Status{order.Unconfirmed, order.InKitchen, order.ReadyForDelivery, order.PickingUp} {
		o := orderIn(t, status, "alex")
		_, err := lifecycle.Apply(o, services.TransitionDeliver, alex)
		require.ErrorIs(t, err, errs.ErrInvalidTransition, status.String())
		assert.Equal(t, status, o.Status())
	}
}

func TestOrderLifecycle_Assign(t *testing.T) {
	lifecycle := services.NewOrderLifecycle()
	alex := actor(t, "alex", kernel.RoleDeliveryPerson)

	t.Run("self assignment", func(t *testing.T) {
		o := orderIn(t, order.ReadyForDelivery, "")
		require.NoError(t, lifecycle.Assign(o, alex, alex))
		assert.True(t, o.IsAssignedTo("alex"))
	})

	t.Run("dispatch by restaurant staff", func(t *testing.T) {
		o := orderIn(t, order.InKitchen, "")
		require.NoError(t, lifecycle.Assign(o, chef(t, restaurantID), alex))
		assert.True(t, o.IsAssignedTo("alex"))
	})

	t.Run("delivery person assigning someone else", func(t *testing.T) {
		o := orderIn(t, order.ReadyForDelivery, "")
		err := lifecycle.Assign(o, actor(t, "bob", kernel.RoleDeliveryPerson), alex)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Nil(t, o.DeliveryPerson())
	})

	t.Run("assignee must be a delivery person", func(t *testing.T) {
		o := orderIn(t, order.ReadyForDelivery, "")
		err := lifecycle.Assign(o, chef(t, restaurantID), actor(t, "jane", kernel.RoleCustomer))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("already assigned", func(t *testing.T) {
		o := orderIn(t, order.ReadyForDelivery, "alex")
		err := lifecycle.Assign(o, actor(t, "bob", kernel.RoleDeliveryPerson), actor(t, "bob", kernel.RoleDeliveryPerson))
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.True(t, o.IsAssignedTo("alex"))
	})

	t.Run("terminal order", func(t *testing.T) {
		o := orderIn(t, order.Canceled, "")
		require.ErrorIs(t, lifecycle.Assign(o, alex, alex), errs.ErrInvalidTransition)
	})
}
