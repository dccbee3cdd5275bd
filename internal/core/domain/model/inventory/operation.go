package inventory

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// OperationType classifies a stock mutation in the ledger.
type OperationType string

const (
	// OperationManualAdjustment is an administrative correction to an
	// absolute quantity.
	OperationManualAdjustment OperationType = "MANUAL_ADJUSTMENT"

	// OperationSale is a decrement caused by a customer purchase.
	OperationSale OperationType = "SALE"

	// OperationRestock is an increment from a supplier delivery.
	OperationRestock OperationType = "RESTOCK"

	// OperationReturn is an increment from a returned purchase.
	OperationReturn OperationType = "RETURN"

	// OperationDamage is a decrement for damaged or spoiled goods.
	OperationDamage OperationType = "DAMAGE"

	// OperationInitial records the first quantity of a new product.
	OperationInitial OperationType = "INITIAL"
)

// Validate checks that the value is one of the defined operation types.
func (o OperationType) Validate() error {
	switch o {
	case OperationManualAdjustment, OperationSale, OperationRestock,
		OperationReturn, OperationDamage, OperationInitial:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("operationType",
		fmt.Errorf("%q is not a valid operation type", string(o)))
}

// String implements fmt.Stringer.
func (o OperationType) String() string {
	return string(o)
}
