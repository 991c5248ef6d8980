package kernel

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the identity/role pair on whose behalf a core operation runs.
// Restaurant employees additionally carry the restaurant they work for,
// resolved from the user directory.
type Actor struct {
	identity     string
	role         Role
	restaurantID uint64

	guard guard.ConstructorGuard
}

func NewActor(identity string, role Role) (Actor, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor identity")
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		identity: identity,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// WithRestaurant returns a copy of the actor affiliated with restaurantID.
func (a Actor) WithRestaurant(restaurantID uint64) Actor {
	a.restaurantID = restaurantID
	return a
}

func (a Actor) Identity() string {
	return a.identity
}

func (a Actor) Role() Role {
	return a.role
}

// RestaurantID is 0 when the actor has no restaurant affiliation.
func (a Actor) RestaurantID() uint64 {
	return a.restaurantID
}

func (a Actor) Is(role Role) bool {
	return a.role == role
}

func (a Actor) String() string {
	return a.identity + "(" + a.role.String() + ")"
}
