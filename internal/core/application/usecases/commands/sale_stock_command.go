package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrSaleStockCommandIsNotConstructed = errors.New(
	"SaleStockCommand must be created via NewSaleStockCommand constructor",
)

// SaleStockCommand represents a sale decrementing a product's stock.
type SaleStockCommand struct { //nolint:recvcheck //using for validation
	productID string
	quantity  int
	operator  string

	guard guard.ConstructorGuard
}

// NewSaleStockCommand creates a command to sell units of a product.
// The quantity must be greater than zero.
func NewSaleStockCommand(productID string, quantity int, operator string) (SaleStockCommand, error) {
	cmd := SaleStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setOperator(operator),
	); err != nil {
		return SaleStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaleStockCommand) Validate() error {
	return c.guard.Validate(ErrSaleStockCommandIsNotConstructed)
}

// ProductID returns the product being sold.
func (c SaleStockCommand) ProductID() string {
	return c.productID
}

// Quantity returns the number of units sold.
func (c SaleStockCommand) Quantity() int {
	return c.quantity
}

// Operator returns who rang up the sale.
func (c SaleStockCommand) Operator() string {
	return c.operator
}

func (c *SaleStockCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}

	c.productID = productID
	return nil
}

func (c *SaleStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}

func (c *SaleStockCommand) setOperator(operator string) error {
	if operator == "" {
		return errs.NewValueIsRequiredError("operator")
	}

	c.operator = operator
	return nil
}
