package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// FailOrderCommandHandler marks an order as failed during preparation.
type FailOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewFailOrderCommandHandler creates a handler for preparation failures.
func NewFailOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) FailOrderCommandHandler {
	return FailOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the failure command.
func (h *FailOrderCommandHandler) Handle(ctx context.Context, cmd FailOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, h.publisher, cmd.OrderID(), func(o *order.Order) error {
		return o.Fail(cmd.Reason())
	})
}
