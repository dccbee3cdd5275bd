package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAdjustStockCommandIsNotConstructed = errors.New(
	"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
)

// AdjustStockCommand represents an administrative correction of a product's
// stock to an absolute quantity. This is not a sale; the ledger records it
// as a manual adjustment with the operator's reason.
//
// Example:
//
//	cmd, err := NewAdjustStockCommand("p1", 10, "restock", "admin")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAdjustStockCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	productID      string
	targetQuantity int
	reason         string
	operator       string

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to set a product's stock to an
// absolute target. A negative target is rejected here, before any
// transaction is opened.
func NewAdjustStockCommand(productID string, targetQuantity int, reason, operator string) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setTargetQuantity(targetQuantity),
		cmd.setReason(reason),
		cmd.setOperator(operator),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// ProductID returns the product whose stock is corrected.
func (c AdjustStockCommand) ProductID() string {
	return c.productID
}

// TargetQuantity returns the absolute quantity to set.
func (c AdjustStockCommand) TargetQuantity() int {
	return c.targetQuantity
}

// Reason returns why the correction is made.
func (c AdjustStockCommand) Reason() string {
	return c.reason
}

// Operator returns who makes the correction.
func (c AdjustStockCommand) Operator() string {
	return c.operator
}

func (c *AdjustStockCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}

	c.productID = productID
	return nil
}

func (c *AdjustStockCommand) setTargetQuantity(targetQuantity int) error {
	if targetQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("targetQuantity",
			fmt.Errorf("%d is negative", targetQuantity))
	}

	c.targetQuantity = targetQuantity
	return nil
}

func (c *AdjustStockCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}

func (c *AdjustStockCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}

	c.operator = operator
	return nil
}
