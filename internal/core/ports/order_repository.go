package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderFilter narrows GetAll queries. Nil fields are not applied.
type OrderFilter struct {
	Limit  int
	Offset int
	UserID *string
	Status *order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// added, changed, and removed items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Soft-deleted orders are not returned.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByUserID retrieves all orders placed by a user, newest first.
	GetByUserID(ctx context.Context, userID string) ([]*order.Order, error)

	// GetAll retrieves orders matching the filter, newest first, along with
	// the total count before limit/offset were applied.
	GetAll(ctx context.Context, filter OrderFilter) ([]*order.Order, int64, error)

	// GetAllOrderedBefore retrieves orders still in Ordered status that were
	// placed before the cutoff. Used by the stale order sweep.
	GetAllOrderedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Delete soft-deletes an order. Deleted orders stay in storage for audit
	// but disappear from every read path.
	Delete(ctx context.Context, id kernel.UUID) error
}
