package queries_test

import (
	"testing"

	"foodorder/internal/adapters/out/postgres/storetest"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type world struct {
	db *gorm.DB
	fx storetest.Fixture
}

func newWorld(t *testing.T) world {
	t.Helper()
	db := storetest.Open(t)
	return world{db: db, fx: storetest.Seed(t, db)}
}

// place stores a pho-place order of jane with two Pho and one Spring Rolls.
func (w world) place(t *testing.T, status order.Status, deliveryPerson string) *order.Order {
	t.Helper()
	return storetest.PlaceOrder(t, w.db, "jane", w.fx.PhoPlace, w.fx.JaneHome, status, deliveryPerson,
		storetest.Line{ItemID: w.fx.Pho, Name: "Pho", Price: "12.50", Quantity: 2},
		storetest.Line{ItemID: w.fx.Rolls, Name: "Spring Rolls", Price: "4.00", Quantity: 1},
	)
}

func actor(t *testing.T, identity string, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(identity, role)
	require.NoError(t, err)
	return a
}

func numberRef(t *testing.T, o *order.Order) kernel.OrderRef {
	t.Helper()
	return kernel.OrderRefFromNumber(o.Number())
}
