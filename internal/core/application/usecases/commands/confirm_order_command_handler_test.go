package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t)

	cmd, err := commands.NewConfirmOrderCommand(stored.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(RecordingPublisher)
	handler := commands.NewConfirmOrderCommandHandler(factory, publisher)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Confirmed, stored.Status())
	assert.Empty(t, stored.DomainEvents(), "queue drained after publish")

	events := publisher.Events()
	require.Len(t, events, 1)
	changed, ok := events[0].(order.StatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, order.Ordered, changed.PreviousStatus())
	assert.Equal(t, order.Confirmed, changed.NewStatus())

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t)
	require.NoError(t, stored.Confirm())
	require.NoError(t, stored.StartPreparation())
	stored.ClearDomainEvents()

	cmd, err := commands.NewConfirmOrderCommand(stored.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(RecordingPublisher)
	handler := commands.NewConfirmOrderCommandHandler(factory, publisher)

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleBroken)

	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	assert.Empty(t, publisher.Events())
}

func TestConfirmOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("orderId", orderID)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmOrderCommandHandler(factory, new(RecordingPublisher))

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewConfirmOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewConfirmOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
