package queries

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetStockQueryIsNotConstructed = errors.New(
		"GetStockQuery must be created via NewGetStockQuery constructor",
	)
)

// GetStockQuery retrieves the current stock level of one product.
type GetStockQuery struct {
	productID string

	guard guard.ConstructorGuard
}

// NewGetStockQuery creates a query for a product's stock level.
func NewGetStockQuery(productID string) (GetStockQuery, error) {
	if productID == "" {
		return GetStockQuery{}, errs.NewValueIsRequiredError("productId")
	}

	return GetStockQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

// ProductID returns the product whose stock is requested.
func (q GetStockQuery) ProductID() string {
	return q.productID
}

// GetStockQueryResponse is the stock read model for one product.
type GetStockQueryResponse struct {
	ProductID  string
	Quantity   int
	OutOfStock bool
	UpdatedAt  time.Time
}
