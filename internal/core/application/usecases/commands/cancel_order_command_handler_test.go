package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cancelCommand(t *testing.T, identity string) commands.CancelOrderCommand {
	t.Helper()
	cmd, err := commands.NewCancelOrderCommand(newActor(t, identity, kernel.RoleCustomer), refTo(t, "AB12CD34"))
	require.NoError(t, err)
	return cmd
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	stored := storedOrder(t, order.Unconfirmed, "")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.orders.On("Get", ctx, refTo(t, "AB12CD34")).Return(stored, nil).Once(),
		uow.orders.On("UpdateStatus", ctx, stored, order.Unconfirmed).Return(nil).Once(),
		uow.ledger.On("Release", ctx, uint64(7), 2).Return(nil).Once(),
		uow.outbox.On("Add", ctx, mock.MatchedBy(func(e ports.OrderEvent) bool {
			return e.Type == ports.OrderCanceled
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCancelOrderCommandHandler(factoryFor(uow))
	o, err := h.Handle(ctx, cancelCommand(t, "jane"))
	require.NoError(t, err)
	assert.Equal(t, order.Canceled, o.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_SecondCancelIsInvalid(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.orders.On("Get", ctx, refTo(t, "AB12CD34")).Return(storedOrder(t, order.Canceled, ""), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factoryFor(uow))
	_, err := h.Handle(ctx, cancelCommand(t, "jane"))
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertExpectations(t)
	uow.ledger.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_OtherCustomersOrderIsNotFound(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.orders.On("Get", ctx, refTo(t, "AB12CD34")).Return(storedOrder(t, order.Unconfirmed, ""), nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factoryFor(uow))
	_, err := h.Handle(ctx, cancelCommand(t, "eve"))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
	uow.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	uow := newMockUoW()
	stored := storedOrder(t, order.Unconfirmed, "")

	uow.On("Begin", ctx).Return(nil).Once()
	uow.orders.On("Get", ctx, refTo(t, "AB12CD34")).Return(stored, nil).Once()
	uow.orders.On("UpdateStatus", ctx, stored, order.Unconfirmed).
		Return(errs.NewInvalidTransitionError("move to CANCELED", "UNCONFIRMED")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factoryFor(uow))
	_, err := h.Handle(ctx, cancelCommand(t, "jane"))
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
