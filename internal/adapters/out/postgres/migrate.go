package postgres

import (
	"foodorder/internal/adapters/out/postgres/menurepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/outboxrepo"
	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&userrepo.AddressDTO{},
		&userrepo.UserDTO{},
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&outboxrepo.OrderEventDTO{},
	)
}
