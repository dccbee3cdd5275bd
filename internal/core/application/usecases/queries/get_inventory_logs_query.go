package queries

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetInventoryLogsQueryIsNotConstructed = errors.New(
		"GetInventoryLogsQuery must be created via NewGetInventoryLogsQuery constructor",
	)
)

// GetInventoryLogsQuery retrieves a page of a product's stock ledger,
// newest entry first.
type GetInventoryLogsQuery struct {
	productID string
	limit     int
	offset    int

	guard guard.ConstructorGuard
}

// NewGetInventoryLogsQuery creates a paginated ledger query. A zero limit
// falls back to the default page size.
func NewGetInventoryLogsQuery(productID string, limit, offset int) (GetInventoryLogsQuery, error) {
	q := GetInventoryLogsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setProductID(productID),
		q.setLimit(limit),
		q.setOffset(offset),
	); err != nil {
		return GetInventoryLogsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryLogsQueryIsNotConstructed)
}

// ProductID returns the product whose ledger is requested.
func (q GetInventoryLogsQuery) ProductID() string {
	return q.productID
}

// Limit returns the page size.
func (q GetInventoryLogsQuery) Limit() int {
	return q.limit
}

// Offset returns the number of entries to skip.
func (q GetInventoryLogsQuery) Offset() int {
	return q.offset
}

func (q *GetInventoryLogsQuery) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	q.productID = productID
	return nil
}

func (q *GetInventoryLogsQuery) setLimit(limit int) error {
	switch {
	case limit == 0:
		q.limit = defaultPageLimit
	case limit < 0 || limit > maxPageLimit:
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageLimit)
	default:
		q.limit = limit
	}
	return nil
}

func (q *GetInventoryLogsQuery) setOffset(offset int) error {
	if offset < 0 {
		return errs.NewValueIsInvalidErrorWithCause("offset",
			fmt.Errorf("%d is negative", offset))
	}
	q.offset = offset
	return nil
}

// GetInventoryLogResponse is one ledger line in the read model.
type GetInventoryLogResponse struct {
	ID            string
	ProductID     string
	Before        int
	After         int
	Delta         int
	OperationType string
	Reason        string
	Operator      string
	CreatedAt     time.Time
}

// GetInventoryLogsQueryResponse is a page of ledger lines, newest first.
type GetInventoryLogsQueryResponse struct {
	Logs    []GetInventoryLogResponse
	Total   int64
	HasMore bool
}
