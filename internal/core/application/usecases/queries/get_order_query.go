// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its items and the lifecycle steps
// still available from its current status.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	handler := NewGetOrderQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//	fmt.Printf("Order %s: %s, total %.2f\n", resp.ID, resp.Status, resp.TotalAmount)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderItemResponse represents one order line in the read model.
type GetOrderItemResponse struct {
	ID        string
	ProductID string
	Name      string
	Quantity  int
	Price     float64
}

// GetOrderQueryResponse represents a full order in the read model.
// AvailableTransitions lists the status names the order may move to next;
// clients use it to render only the actions that will succeed.
type GetOrderQueryResponse struct {
	ID                   kernel.UUID
	UserID               string
	Description          string
	Status               string
	Items                []GetOrderItemResponse
	TotalAmount          float64
	CancelledBy          *string
	ErrorMessage         *string
	AvailableTransitions []string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
