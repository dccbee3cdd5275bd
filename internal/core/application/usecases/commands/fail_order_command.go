package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrFailOrderCommandIsNotConstructed = errors.New(
	"FailOrderCommand must be created via NewFailOrderCommand constructor",
)

// FailOrderCommand represents the kitchen reporting that an order in
// preparation cannot be finished.
type FailOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewFailOrderCommand creates a command to fail an order with a reason.
func NewFailOrderCommand(orderID kernel.UUID, reason string) (FailOrderCommand, error) {
	cmd := FailOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return FailOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FailOrderCommand) Validate() error {
	return c.guard.Validate(ErrFailOrderCommandIsNotConstructed)
}

// OrderID returns the failing order.
func (c FailOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns why the kitchen could not finish the order.
func (c FailOrderCommand) Reason() string {
	return c.reason
}

func (c *FailOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FailOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
