package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func inventoryFactoryFor(uow *MockUoW) *MockInventoryUoWFactory {
	f := new(MockInventoryUoWFactory)
	f.On("Create").Return(uow).Once()
	return f
}

func TestNewUpdateInventoryCommand(t *testing.T) {
	chef := newActor(t, "chef", kernel.RoleRestaurantEmployee)

	_, err := commands.NewUpdateInventoryCommand(chef, 7, -1, nil)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewUpdateInventoryCommand(chef, 0, 1, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	available := false
	cmd, err := commands.NewUpdateInventoryCommand(chef, 7, 0, &available)
	require.NoError(t, err)
	available = true
	require.NotNil(t, cmd.Available())
	assert.False(t, *cmd.Available())
}

func TestUpdateInventoryCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	chef := newActor(t, "chef", kernel.RoleRestaurantEmployee)

	t.Run("success", func(t *testing.T) {
		item := menuItem(t, 7, 3, "Pho", "12.50", 5, true)
		uow := newMockUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.users.On("GetByUsername", ctx, "chef").
				Return(user("chef", kernel.RoleRestaurantEmployee, 3, nil), nil).Once(),
			uow.ledger.On("Get", ctx, uint64(3), uint64(7)).Return(item, nil).Once(),
			uow.ledger.On("SetInventory", ctx, mock.MatchedBy(func(m *menu.MenuItem) bool {
				return m.Inventory() == 40 && !m.Available()
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		available := false
		cmd, err := commands.NewUpdateInventoryCommand(chef, 7, 40, &available)
		require.NoError(t, err)

		h := commands.NewUpdateInventoryCommandHandler(inventoryFactoryFor(uow))
		updated, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, 40, updated.Inventory())
		uow.AssertExpectations(t)
	})

	t.Run("item of another restaurant", func(t *testing.T) {
		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.users.On("GetByUsername", ctx, "chef").
			Return(user("chef", kernel.RoleRestaurantEmployee, 3, nil), nil).Once()
		uow.ledger.On("Get", ctx, uint64(3), uint64(99)).
			Return(nil, errs.NewObjectNotFoundError("menu item", uint64(99))).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewUpdateInventoryCommand(chef, 99, 1, nil)
		require.NoError(t, err)

		h := commands.NewUpdateInventoryCommandHandler(inventoryFactoryFor(uow))
		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertExpectations(t)
	})

	t.Run("not staff", func(t *testing.T) {
		uow := newMockUoW()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.users.On("GetByUsername", ctx, "alex").
			Return(user("alex", kernel.RoleDeliveryPerson, 0, nil), nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewUpdateInventoryCommand(newActor(t, "alex", kernel.RoleDeliveryPerson), 7, 1, nil)
		require.NoError(t, err)

		h := commands.NewUpdateInventoryCommandHandler(inventoryFactoryFor(uow))
		_, err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		uow.AssertExpectations(t)
	})
}
