package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand assigns a delivery person to an order. Delivery persons
// assign themselves; restaurant staff dispatch someone to their own orders.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	actor          kernel.Actor
	ref            kernel.OrderRef
	deliveryPerson string

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates the command. An empty deliveryPerson means the
// actor assigns themself.
func NewAssignOrderCommand(actor kernel.Actor, ref kernel.OrderRef, deliveryPerson string) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		ref.Validate(),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	deliveryPerson = strings.TrimSpace(deliveryPerson)
	if deliveryPerson == "" {
		deliveryPerson = actor.Identity()
	}
	if deliveryPerson == "" {
		return AssignOrderCommand{}, errs.NewValueIsRequiredError("delivery person")
	}

	cmd.actor = actor
	cmd.ref = ref
	cmd.deliveryPerson = deliveryPerson
	return cmd, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c AssignOrderCommand) Ref() kernel.OrderRef {
	return c.ref
}

func (c AssignOrderCommand) DeliveryPerson() string {
	return c.deliveryPerson
}
