// Package storetest opens throwaway SQLite stores with the service schema and
// seeds them with a small, fixed world of restaurants, users and menu items.
package storetest

import (
	"context"
	"path/filepath"
	"testing"

	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/menurepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated SQLite store backed by a file in the test's temp
// dir. The pool holds a single connection so transactions from concurrent
// goroutines queue up instead of failing with SQLITE_BUSY.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "store.db") +
		"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.AutoMigrate(db))
	return db
}

// Fixture holds the ids of the seeded world.
//
//	pho-place: Pho 12.50 (stock 5), Spring Rolls 4.00 (stock 3), Banh Mi 7.25 (unavailable)
//	pizza-co:  Margherita 9.00 (stock 20)
//	users:     jane (customer, has address), max (customer, no address),
//	           chef (staff of pho-place), luigi (staff of pizza-co),
//	           alex and bob (delivery persons)
type Fixture struct {
	PhoPlace   uint64
	PizzaCo    uint64
	Pho        uint64
	Rolls      uint64
	BanhMi     uint64
	Margherita uint64
	JaneHome   uint64
}

func Seed(t testing.TB, db *gorm.DB) Fixture {
	t.Helper()

	var fx Fixture
	pho := restaurantrepo.RestaurantDTO{Slug: "pho-place", Name: "Pho Place"}
	pizza := restaurantrepo.RestaurantDTO{Slug: "pizza-co", Name: "Pizza Co"}
	require.NoError(t, db.Create(&pho).Error)
	require.NoError(t, db.Create(&pizza).Error)
	fx.PhoPlace, fx.PizzaCo = pho.ID, pizza.ID

	home := userrepo.AddressDTO{Street: "1 Main St", City: "Springfield", PostalCode: "12345"}
	require.NoError(t, db.Create(&home).Error)
	fx.JaneHome = home.ID

	users := []userrepo.UserDTO{
		{Username: "jane", FullName: "Jane Doe", Role: kernel.RoleCustomer.String(), AddressID: &home.ID},
		{Username: "max", FullName: "Max Mustermann", Role: kernel.RoleCustomer.String()},
		{Username: "chef", FullName: "Chef Tran", Role: kernel.RoleRestaurantEmployee.String(), RestaurantID: &pho.ID},
		{Username: "luigi", FullName: "Luigi Rossi", Role: kernel.RoleRestaurantEmployee.String(), RestaurantID: &pizza.ID},
		{Username: "alex", FullName: "Alex Rider", Role: kernel.RoleDeliveryPerson.String()},
		{Username: "bob", FullName: "Bob Builder", Role: kernel.RoleDeliveryPerson.String()},
	}
	require.NoError(t, db.Create(&users).Error)

	fx.Pho = addItem(t, db, pho.ID, "Pho", "12.50", 5, true)
	fx.Rolls = addItem(t, db, pho.ID, "Spring Rolls", "4.00", 3, true)
	fx.BanhMi = addItem(t, db, pho.ID, "Banh Mi", "7.25", 5, false)
	fx.Margherita = addItem(t, db, pizza.ID, "Margherita", "9.00", 20, true)
	return fx
}

func addItem(t testing.TB, db *gorm.DB, restaurantID uint64, name, price string, stock int, available bool) uint64 {
	t.Helper()

	p, err := kernel.PriceFromString(price)
	require.NoError(t, err)
	item, err := menu.RestoreMenuItem(0, restaurantID, name, p, stock, available)
	require.NoError(t, err)

	dto := menurepo.FromDomain(item)
	require.NoError(t, db.Create(&dto).Error)
	return dto.ID
}

// Stock returns the stored inventory of a menu item.
func Stock(t testing.TB, db *gorm.DB, itemID uint64) int {
	t.Helper()

	var dto menurepo.MenuItemDTO
	require.NoError(t, db.First(&dto, itemID).Error)
	return dto.Inventory
}

// Line is one line of an order placed with PlaceOrder.
type Line struct {
	ItemID   uint64
	Name     string
	Price    string
	Quantity int
}

// PlaceOrder stores an order for customer directly, bypassing submission, and
// moves it to status with the given delivery person ("" for none).
func PlaceOrder(
	t testing.TB,
	db *gorm.DB,
	customer string,
	restaurantID, addressID uint64,
	status order.Status,
	deliveryPerson string,
	lines ...Line,
) *order.Order {
	t.Helper()

	items := make([]order.LineItem, 0, len(lines))
	for _, l := range lines {
		p, err := kernel.PriceFromString(l.Price)
		require.NoError(t, err)
		item, err := order.NewLineItem(l.ItemID, l.Name, p, l.Quantity)
		require.NoError(t, err)
		items = append(items, item)
	}

	number, err := kernel.GenerateOrderNumber()
	require.NoError(t, err)
	o, err := order.NewOrder(number, customer, restaurantID, addressID, items)
	require.NoError(t, err)
	require.NoError(t, orderrepo.NewGormOrderRepository(db).Add(context.Background(), o))

	updates := map[string]any{"status": int(status)}
	if deliveryPerson != "" {
		updates["delivery_person"] = deliveryPerson
	}
	require.NoError(t, db.Model(&orderrepo.OrderDTO{}).Where("id = ?", o.ID()).Updates(updates).Error)

	ref, err := kernel.OrderRefFromID(o.ID())
	require.NoError(t, err)
	stored, err := orderrepo.NewGormOrderRepository(db).Get(context.Background(), ref)
	require.NoError(t, err)
	return stored
}
