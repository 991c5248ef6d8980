package services

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// Transition names an edge of the order lifecycle.
type Transition int

const (
	TransitionCancel Transition = iota + 1
	TransitionStartCooking
	TransitionMarkReady
	TransitionPickUp
	TransitionTransport
	TransitionDeliver
)

// ownershipRule decides whether actor owns the order for the purpose of an edge.
type ownershipRule func(o *order.Order, actor kernel.Actor) bool

type edge struct {
	action string
	from   order.Status
	to     order.Status
	role   kernel.Role
	owns   ownershipRule
}

func ownedByCustomer(o *order.Order, actor kernel.Actor) bool {
	return o.IsOwnedBy(actor.Identity())
}

func staffOfRestaurant(o *order.Order, actor kernel.Actor) bool {
	return actor.RestaurantID() != 0 && actor.RestaurantID() == o.RestaurantID()
}

func assignedDeliveryPerson(o *order.Order, actor kernel.Actor) bool {
	return o.IsAssignedTo(actor.Identity())
}

func getTransitionTable() map[Transition]edge {
	return map[Transition]edge{
		TransitionCancel: {
			action: "cancel", from: order.Unconfirmed, to: order.Canceled,
			role: kernel.RoleCustomer, owns: ownedByCustomer,
		},
		TransitionStartCooking: {
			action: "start cooking", from: order.Unconfirmed, to: order.InKitchen,
			role: kernel.RoleRestaurantEmployee, owns: staffOfRestaurant,
		},
		TransitionMarkReady: {
			action: "mark ready for delivery", from: order.InKitchen, to: order.ReadyForDelivery,
			role: kernel.RoleRestaurantEmployee, owns: staffOfRestaurant,
		},
		TransitionPickUp: {
			action: "confirm pickup", from: order.ReadyForDelivery, to: order.PickingUp,
			role: kernel.RoleDeliveryPerson, owns: assignedDeliveryPerson,
		},
		TransitionTransport: {
			action: "confirm transport", from: order.PickingUp, to: order.Transport,
			role: kernel.RoleDeliveryPerson, owns: assignedDeliveryPerson,
		},
		TransitionDeliver: {
			action: "confirm delivery", from: order.Transport, to: order.Delivered,
			role: kernel.RoleDeliveryPerson, owns: assignedDeliveryPerson,
		},
	}
}

func (t Transition) lookup() (edge, error) {
	e, ok := getTransitionTable()[t]
	if !ok {
		return edge{}, errs.NewValueIsInvalidErrorWithCause("transition", fmt.Errorf("%d is not a known transition", t))
	}
	return e, nil
}

func (t Transition) Validate() error {
	_, err := t.lookup()
	return err
}

// String returns the action name, e.g. "confirm pickup".
func (t Transition) String() string {
	if e, err := t.lookup(); err == nil {
		return e.action
	}
	return "unknown transition"
}

// From returns the status the order must be in for the transition.
func (t Transition) From() order.Status {
	e, _ := t.lookup()
	return e.from
}

// To returns the status the transition leads to.
func (t Transition) To() order.Status {
	e, _ := t.lookup()
	return e.to
}

// OrderLifecycle authorizes and applies order transitions.
//
// Checks run in a fixed order and stop at the first failure, leaving the order
// untouched:
//  1. the actor has the role the edge requires (Unauthorized)
//  2. the actor owns the order for that edge (Unauthorized)
//  3. the order is in the edge's source status (InvalidTransition)
//
// Example:
//
//	lifecycle := services.NewOrderLifecycle()
//	from, err := lifecycle.Apply(o, services.TransitionPickUp, actor)
//	if err != nil {
//	    return err
//	}
//	// persist with a compare-and-swap on from
type OrderLifecycle struct{}

func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// Authorize runs the role and ownership checks of transition for actor.
func (l OrderLifecycle) Authorize(o *order.Order, transition Transition, actor kernel.Actor) error {
	e, err := transition.lookup()
	if err != nil {
		return err
	}
	if err = o.Validate(); err != nil {
		return err
	}
	if err = actor.Validate(); err != nil {
		return err
	}

	if !actor.Is(e.role) {
		return errs.NewUnauthorizedErrorWithCause(
			e.action,
			actor.Identity(),
			fmt.Errorf("requires role %s, has %s", e.role, actor.Role()),
		)
	}
	if !e.owns(o, actor) {
		return errs.NewUnauthorizedErrorWithCause(
			e.action,
			actor.Identity(),
			fmt.Errorf("order %s is not theirs to %s", o.Number(), e.action),
		)
	}
	return nil
}

// Apply authorizes transition for actor and moves the order to the target
// status. It returns the status the order was in, which callers use as the
// expected value of a conditional store update.
func (l OrderLifecycle) Apply(o *order.Order, transition Transition, actor kernel.Actor) (order.Status, error) {
	if err := l.Authorize(o, transition, actor); err != nil {
		return order.Unknown, err
	}

	e, _ := transition.lookup()
	from := o.Status()
	if from != e.from {
		return order.Unknown, errs.NewInvalidTransitionError(e.action, from.String())
	}
	if err := o.Transition(e.to); err != nil {
		return order.Unknown, err
	}
	return from, nil
}

// Assign records assignee as the order's delivery person on behalf of actor.
//
// A delivery person may assign themself; a restaurant employee may dispatch any
// delivery person to an order of their own restaurant. assignee must carry the
// DELIVERY_PERSON role as recorded in the user directory.
func (l OrderLifecycle) Assign(o *order.Order, actor, assignee kernel.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := assignee.Validate(); err != nil {
		return err
	}

	if !assignee.Is(kernel.RoleDeliveryPerson) {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery person",
			fmt.Errorf("%s has role %s", assignee.Identity(), assignee.Role()),
		)
	}

	switch {
	case actor.Is(kernel.RoleDeliveryPerson) && actor.Identity() == assignee.Identity():
	case actor.Is(kernel.RoleRestaurantEmployee) && staffOfRestaurant(o, actor):
	default:
		return errs.NewUnauthorizedErrorWithCause(
			"assign a delivery person",
			actor.Identity(),
			fmt.Errorf("order %s", o.Number()),
		)
	}

	return o.AssignDeliveryPerson(assignee.Identity())
}
