package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrMarkReadyForPickupCommandIsNotConstructed = errors.New(
	"MarkReadyForPickupCommand must be created via NewMarkReadyForPickupCommand constructor",
)

// MarkReadyForPickupCommand represents the kitchen finishing an order.
type MarkReadyForPickupCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReadyForPickupCommand creates a command to mark an order ready for pickup.
func NewMarkReadyForPickupCommand(orderID kernel.UUID) (MarkReadyForPickupCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkReadyForPickupCommand{}, err
	}

	return MarkReadyForPickupCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyForPickupCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyForPickupCommandIsNotConstructed)
}

// OrderID returns the finished order.
func (c MarkReadyForPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}
