package inventory

import (
	"fmt"
	"strconv"

	"foodorder/internal/pkg/errs"
)

// StockQuantity is a non-negative unit count. The zero value means "out of
// stock" and is valid; negative quantities cannot be constructed or reached
// through arithmetic.
type StockQuantity struct {
	value int
}

// NewStockQuantity creates a quantity, rejecting negative values.
func NewStockQuantity(value int) (StockQuantity, error) {
	if value < 0 {
		return StockQuantity{}, errs.NewValueIsInvalidErrorWithCause("stock quantity",
			fmt.Errorf("%d is negative", value))
	}
	return StockQuantity{value: value}, nil
}

// Value returns the unit count.
func (q StockQuantity) Value() int {
	return q.value
}

// Add returns the sum of the two quantities.
func (q StockQuantity) Add(other StockQuantity) StockQuantity {
	return StockQuantity{value: q.value + other.value}
}

// Subtract returns the difference, or a BusinessRuleError when the result
// would go negative. This is the guard behind the no-oversell invariant.
func (q StockQuantity) Subtract(other StockQuantity) (StockQuantity, error) {
	if q.value < other.value {
		return StockQuantity{}, errs.NewBusinessRuleErrorWithCause(
			"insufficient stock",
			fmt.Errorf("available: %d, requested: %d", q.value, other.value),
		)
	}
	return StockQuantity{value: q.value - other.value}, nil
}

// IsZero reports whether the quantity is out of stock.
func (q StockQuantity) IsZero() bool {
	return q.value == 0
}

// IsLessThan reports whether q is strictly below other.
func (q StockQuantity) IsLessThan(other StockQuantity) bool {
	return q.value < other.value
}

// IsGreaterOrEqual reports whether q covers other.
func (q StockQuantity) IsGreaterOrEqual(other StockQuantity) bool {
	return q.value >= other.value
}

// IsEqual compares two quantities by value.
func (q StockQuantity) IsEqual(other StockQuantity) bool {
	return q.value == other.value
}

// String implements fmt.Stringer.
func (q StockQuantity) String() string {
	return strconv.Itoa(q.value)
}
