package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer's request to cancel one of their
// own orders before the kitchen started on it.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	actor kernel.Actor
	ref   kernel.OrderRef

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(actor kernel.Actor, ref kernel.OrderRef) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		ref.Validate(),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	cmd.actor = actor
	cmd.ref = ref
	return cmd, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CancelOrderCommand) Ref() kernel.OrderRef {
	return c.ref
}
