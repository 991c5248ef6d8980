package commands

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// directoryActor reloads actor from the user directory. The role must match
// what the caller claimed, and the restaurant affiliation of staff members is
// taken from the directory only.
func directoryActor(ctx context.Context, users ports.UserDirectory, actor kernel.Actor, action string) (kernel.Actor, error) {
	user, err := users.GetByUsername(ctx, actor.Identity())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.Actor{}, errs.NewUnauthorizedErrorWithCause(action, actor.Identity(), err)
	}
	if err != nil {
		return kernel.Actor{}, err
	}

	if user.Role != actor.Role() {
		return kernel.Actor{}, errs.NewUnauthorizedErrorWithCause(
			action,
			actor.Identity(),
			fmt.Errorf("claims role %s, directory has %s", actor.Role(), user.Role),
		)
	}
	return user.Actor()
}
