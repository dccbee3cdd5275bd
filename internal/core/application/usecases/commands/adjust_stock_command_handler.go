package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/inventory"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// AdjustStockCommandHandler sets a product's stock to an absolute quantity
// and appends the matching ledger entry in the same transaction. The first
// adjustment of a product creates its stock record, with an INITIAL ledger
// entry instead of a MANUAL_ADJUSTMENT one.
type AdjustStockCommandHandler struct {
	uowFactory InventoryUoWFactory
	publisher  ports.EventPublisher
}

// NewAdjustStockCommandHandler creates a handler for stock corrections.
func NewAdjustStockCommandHandler(uowFactory InventoryUoWFactory, publisher ports.EventPublisher) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the stock correction command. The record row is locked
// for the duration of the transaction so the correction cannot interleave
// with a concurrent sale.
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	record, err := inventoryRepo.GetByProductIDForUpdate(ctx, cmd.ProductID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return h.createRecord(ctx, uow, cmd)
		}
		return err
	}

	entry, err := record.AdjustTo(cmd.TargetQuantity(), inventory.OperationManualAdjustment,
		cmd.Reason(), cmd.Operator())
	if err != nil {
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

// createRecord handles the first adjustment of a product: the stock record
// does not exist yet, so it is created at the target quantity.
func (h *AdjustStockCommandHandler) createRecord(ctx context.Context, uow InventoryUoW, cmd AdjustStockCommand) error {
	initial, err := inventory.NewStockQuantity(cmd.TargetQuantity())
	if err != nil {
		return err
	}

	record, entry, err := inventory.NewRecord(cmd.ProductID(), initial, cmd.Operator())
	if err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	if err = inventoryRepo.Add(ctx, record); err != nil {
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
