package queries

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrderListQueryIsNotConstructed = errors.New(
		"GetOrderListQuery must be created via NewGetOrderListQuery constructor",
	)
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// GetOrderListQuery retrieves a page of orders, newest first, optionally
// narrowed to one user and/or one status.
type GetOrderListQuery struct {
	limit  int
	offset int
	userID *string
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrderListQuery creates a paginated order list query. A zero limit
// falls back to the default page size; userID and status are optional.
func NewGetOrderListQuery(limit, offset int, userID *string, status *order.Status) (GetOrderListQuery, error) {
	q := GetOrderListQuery{
		userID: userID,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setLimit(limit),
		q.setOffset(offset),
		q.validateFilters(),
	); err != nil {
		return GetOrderListQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderListQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderListQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetOrderListQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip.
func (q GetOrderListQuery) Offset() int {
	return q.offset
}

// UserID returns the optional user filter.
func (q GetOrderListQuery) UserID() *string {
	return q.userID
}

// Status returns the optional status filter.
func (q GetOrderListQuery) Status() *order.Status {
	return q.status
}

func (q *GetOrderListQuery) setLimit(limit int) error {
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

func (q *GetOrderListQuery) setOffset(offset int) error {
	if offset < 0 {
		return errs.NewValueIsInvalidErrorWithCause("offset",
			fmt.Errorf("%d is negative", offset))
	}
	q.offset = offset
	return nil
}

func (q *GetOrderListQuery) validateFilters() error {
	if q.userID != nil && *q.userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	if q.status != nil {
		return q.status.Validate()
	}
	return nil
}

// GetOrderListItemResponse is one order summary in the list read model.
type GetOrderListItemResponse struct {
	ID          kernel.UUID
	UserID      string
	Status      string
	ItemCount   int
	TotalAmount float64
	CreatedAt   time.Time
}

// GetOrderListQueryResponse is a page of order summaries. Total counts all
// rows matching the filters before pagination; HasMore tells the client
// whether another page exists.
type GetOrderListQueryResponse struct {
	Orders  []GetOrderListItemResponse
	Total   int64
	HasMore bool
}
