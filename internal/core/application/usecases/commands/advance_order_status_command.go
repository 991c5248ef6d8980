package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand moves an order one step forward on behalf of
// restaurant staff (start cooking, mark ready) or its delivery person (pick
// up, transport, deliver). Cancellation has its own command.
//
// Example:
//
//	cmd, err := NewAdvanceOrderStatusCommand(actor, ref, services.TransitionPickUp)
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	ref        kernel.OrderRef
	transition services.Transition

	guard guard.ConstructorGuard
}

func NewAdvanceOrderStatusCommand(
	actor kernel.Actor,
	ref kernel.OrderRef,
	transition services.Transition,
) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		ref.Validate(),
		cmd.setTransition(transition),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	cmd.actor = actor
	cmd.ref = ref
	return cmd, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c AdvanceOrderStatusCommand) Ref() kernel.OrderRef {
	return c.ref
}

func (c AdvanceOrderStatusCommand) Transition() services.Transition {
	return c.transition
}

func (c *AdvanceOrderStatusCommand) setTransition(transition services.Transition) error {
	if err := transition.Validate(); err != nil {
		return err
	}
	if transition == services.TransitionCancel {
		return errs.NewValueIsInvalidError("transition")
	}
	c.transition = transition
	return nil
}
