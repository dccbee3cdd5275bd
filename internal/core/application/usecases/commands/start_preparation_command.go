package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrStartPreparationCommandIsNotConstructed = errors.New(
	"StartPreparationCommand must be created via NewStartPreparationCommand constructor",
)

// StartPreparationCommand represents the kitchen picking up a confirmed order.
type StartPreparationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartPreparationCommand creates a command to start preparing an order.
func NewStartPreparationCommand(orderID kernel.UUID) (StartPreparationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartPreparationCommand{}, err
	}

	return StartPreparationCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPreparationCommand) Validate() error {
	return c.guard.Validate(ErrStartPreparationCommandIsNotConstructed)
}

// OrderID returns the order to prepare.
func (c StartPreparationCommand) OrderID() kernel.UUID {
	return c.orderID
}
