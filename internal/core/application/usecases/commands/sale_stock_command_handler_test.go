package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/inventory"
	"foodorder/internal/pkg/errs"
)

func TestNewSaleStockCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewSaleStockCommand("p1", 2, "cashier")
		require.NoError(t, err)
		assert.Equal(t, "p1", cmd.ProductID())
		assert.Equal(t, 2, cmd.Quantity())
		assert.Equal(t, "cashier", cmd.Operator())
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := commands.NewSaleStockCommand("p1", 0, "cashier")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := commands.NewSaleStockCommand("p1", -2, "cashier")
		require.Error(t, err)
	})

	t.Run("empty product id", func(t *testing.T) {
		_, err := commands.NewSaleStockCommand("", 2, "cashier")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSaleStockCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	record := newStoredRecord(t, 5)

	cmd, err := commands.NewSaleStockCommand("p1", 2, "cashier")
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("GetByProductIDForUpdate", ctx, "p1").Return(record, nil).Once(),
		inventoryRepo.On("Save", ctx, record).Return(nil).Once(),
		inventoryRepo.On("AppendLog", ctx, mock.AnythingOfType("inventory.LogEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(RecordingPublisher)
	handler := commands.NewSaleStockCommandHandler(factory, publisher)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, 3, record.Quantity().Value())

	appended := inventoryRepo.Calls[2].Arguments.Get(1).(inventory.LogEntry)
	assert.Equal(t, inventory.OperationSale, appended.OperationType())
	assert.Equal(t, -2, appended.Delta())

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, inventory.EventTypeStockAdjusted, events[0].EventType())
}

func TestSaleStockCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	record := newStoredRecord(t, 1)

	cmd, err := commands.NewSaleStockCommand("p1", 2, "cashier")
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("GetByProductIDForUpdate", ctx, "p1").Return(record, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(RecordingPublisher)
	handler := commands.NewSaleStockCommandHandler(factory, publisher)

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleBroken)
	assert.Contains(t, err.Error(), "insufficient stock")

	// nothing written, stock untouched
	inventoryRepo.AssertNotCalled(t, "Save", ctx, record)
	inventoryRepo.AssertNotCalled(t, "AppendLog", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	assert.Equal(t, 1, record.Quantity().Value())

	// the rejection is still observable
	events := publisher.Events()
	require.Len(t, events, 1)
	insufficient, ok := events[0].(inventory.StockInsufficientEvent)
	require.True(t, ok)
	assert.Equal(t, 2, insufficient.RequestedQuantity().Value())
	assert.Equal(t, 1, insufficient.AvailableQuantity().Value())
}
