package commands_test

import (
	"context"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, ref kernel.OrderRef) (*order.Order, error) {
	args := m.Called(ctx, ref)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) AssignDeliveryPerson(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockInventoryLedger struct{ mock.Mock }

func (m *MockInventoryLedger) Get(ctx context.Context, restaurantID, itemID uint64) (*menu.MenuItem, error) {
	args := m.Called(ctx, restaurantID, itemID)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}

func (m *MockInventoryLedger) Reserve(ctx context.Context, itemID uint64, quantity int) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}

func (m *MockInventoryLedger) Release(ctx context.Context, itemID uint64, quantity int) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}

func (m *MockInventoryLedger) SetInventory(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type MockRestaurantCatalog struct{ mock.Mock }

func (m *MockRestaurantCatalog) GetBySlug(ctx context.Context, slug string) (ports.Restaurant, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(ports.Restaurant), args.Error(1)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) GetByUsername(ctx context.Context, username string) (ports.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(ports.User), args.Error(1)
}

type MockOrderEventOutbox struct{ mock.Mock }

func (m *MockOrderEventOutbox) Add(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOrderEventOutbox) ListUnpublished(ctx context.Context, limit int) ([]ports.OrderEvent, error) {
	args := m.Called(ctx, limit)
	events, _ := args.Get(0).([]ports.OrderEvent)
	return events, args.Error(1)
}

func (m *MockOrderEventOutbox) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockUoW hands out the same repository mocks for every call.
type MockUoW struct {
	mock.Mock
	orders      *MockOrderRepository
	ledger      *MockInventoryLedger
	restaurants *MockRestaurantCatalog
	users       *MockUserDirectory
	outbox      *MockOrderEventOutbox
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:      new(MockOrderRepository),
		ledger:      new(MockInventoryLedger),
		restaurants: new(MockRestaurantCatalog),
		users:       new(MockUserDirectory),
		outbox:      new(MockOrderEventOutbox),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository { return m.orders }
func (m *MockUoW) InventoryLedger() ports.InventoryLedger { return m.ledger }
func (m *MockUoW) RestaurantCatalog() ports.RestaurantCatalog { return m.restaurants }
func (m *MockUoW) UserDirectory() ports.UserDirectory { return m.users }
func (m *MockUoW) OrderEventOutbox() ports.OrderEventOutbox { return m.outbox }

func (m *MockUoW) AssertExpectations(t *testing.T) {
	m.Mock.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.ledger.AssertExpectations(t)
	m.restaurants.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.outbox.AssertExpectations(t)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) Publish(ctx context.Context, events ...ports.OrderEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func factoryFor(uow *MockUoW) *MockUoWFactory {
	f := new(MockUoWFactory)
	f.On("Create").Return(uow).Once()
	return f
}

func newActor(t *testing.T, identity string, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(identity, role)
	require.NoError(t, err)
	return a
}

func user(username string, role kernel.Role, restaurantID uint64, addressID *uint64) ports.User {
	return ports.User{
		ID:           1,
		Username:     username,
		FullName:     username,
		Role:         role,
		RestaurantID: restaurantID,
		AddressID:    addressID,
	}
}

func menuItem(t *testing.T, id, restaurantID uint64, name, price string, stock int, available bool) *menu.MenuItem {
	t.Helper()
	p, err := kernel.PriceFromString(price)
	require.NoError(t, err)
	item, err := menu.RestoreMenuItem(id, restaurantID, name, p, stock, available)
	require.NoError(t, err)
	return item
}

func storedOrder(t *testing.T, status order.Status, deliveryPerson string) *order.Order {
	t.Helper()
	number, err := kernel.NewOrderNumber("AB12CD34")
	require.NoError(t, err)
	p, err := kernel.PriceFromString("12.50")
	require.NoError(t, err)
	line, err := order.NewLineItem(7, "Pho", p, 2)
	require.NoError(t, err)

	var dp *string
	if deliveryPerson != "" {
		dp = &deliveryPerson
	}
	o, err := order.RestoreOrder(42, number, "jane", 3, 9, []order.LineItem{line}, status, dp)
	require.NoError(t, err)
	return o
}

func refTo(t *testing.T, s string) kernel.OrderRef {
	t.Helper()
	ref, err := kernel.ParseOrderRef(s)
	require.NoError(t, err)
	return ref
}
