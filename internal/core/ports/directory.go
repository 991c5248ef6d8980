package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// Restaurant is the catalog record the order core references by id.
type Restaurant struct {
	ID   uint64
	Slug string
	Name string
}

// User is a directory record. Registration and authentication live outside
// this service; the core only reads users to resolve roles, affiliations and
// delivery addresses.
type User struct {
	ID           uint64
	Username     string
	FullName     string
	Role         kernel.Role
	RestaurantID uint64
	AddressID    *uint64
}

// Actor builds the actor the user acts as, carrying the restaurant
// affiliation of staff members.
func (u User) Actor() (kernel.Actor, error) {
	actor, err := kernel.NewActor(u.Username, u.Role)
	if err != nil {
		return kernel.Actor{}, err
	}
	if u.RestaurantID != 0 {
		actor = actor.WithRestaurant(u.RestaurantID)
	}
	return actor, nil
}

// RestaurantCatalog resolves restaurants.
type RestaurantCatalog interface {
	// GetBySlug returns the restaurant with the given slug.
	// Returns errs.ObjectNotFoundError when no restaurant matches.
	GetBySlug(ctx context.Context, slug string) (Restaurant, error)
}

// UserDirectory resolves users.
type UserDirectory interface {
	// GetByUsername returns the user with the given username.
	// Returns errs.ObjectNotFoundError when no user matches.
	GetByUsername(ctx context.Context, username string) (User, error)
}
