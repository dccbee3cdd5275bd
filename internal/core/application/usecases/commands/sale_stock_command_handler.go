package commands

import (
	"context"

	"foodorder/internal/core/domain/model/inventory"
	"foodorder/internal/core/ports"
)

// SaleStockCommandHandler decrements a product's stock for a sale.
//
// The handler holds the record's row lock from the read to the commit, so
// the read-check-decrement sequence executes as one serializable unit per
// product. Concurrent sales against the same product queue on the lock;
// whichever loses the race re-reads the already decremented quantity and is
// rejected once stock runs out. Stock never goes below zero.
type SaleStockCommandHandler struct {
	uowFactory InventoryUoWFactory
	publisher  ports.EventPublisher
}

// NewSaleStockCommandHandler creates a handler for stock sales.
func NewSaleStockCommandHandler(uowFactory InventoryUoWFactory, publisher ports.EventPublisher) SaleStockCommandHandler {
	return SaleStockCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the sale command.
func (h *SaleStockCommandHandler) Handle(ctx context.Context, cmd SaleStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	requested, err := inventory.NewStockQuantity(cmd.Quantity())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	record, err := inventoryRepo.GetByProductIDForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	entry, err := record.Sell(requested, cmd.Operator())
	if err != nil {
		// The rejection itself is observable: the StockInsufficient event
		// queued by the aggregate still goes out even though nothing commits.
		publishAndClear(ctx, h.publisher, record)
		return err
	}

	if err = inventoryRepo.Save(ctx, record); err != nil {
		return err
	}

	if err = inventoryRepo.AppendLog(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishAndClear(ctx, h.publisher, record)
	return nil
}
