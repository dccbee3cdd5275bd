package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// StartPreparationCommandHandler moves an order from Confirmed to InPreparation.
type StartPreparationCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewStartPreparationCommandHandler creates a handler for starting preparation.
func NewStartPreparationCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) StartPreparationCommandHandler {
	return StartPreparationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the start preparation command.
func (h *StartPreparationCommandHandler) Handle(ctx context.Context, cmd StartPreparationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, h.publisher, cmd.OrderID(), func(o *order.Order) error {
		return o.StartPreparation()
	})
}
