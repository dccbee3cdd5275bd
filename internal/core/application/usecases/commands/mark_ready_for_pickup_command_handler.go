package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// MarkReadyForPickupCommandHandler moves an order from InPreparation to ReadyForPickup.
type MarkReadyForPickupCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewMarkReadyForPickupCommandHandler creates a handler for marking orders ready.
func NewMarkReadyForPickupCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) MarkReadyForPickupCommandHandler {
	return MarkReadyForPickupCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the ready-for-pickup command.
func (h *MarkReadyForPickupCommandHandler) Handle(ctx context.Context, cmd MarkReadyForPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, h.publisher, cmd.OrderID(), func(o *order.Order) error {
		return o.MarkReadyForPickup()
	})
}
