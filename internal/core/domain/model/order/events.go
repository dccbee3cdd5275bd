package order

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// Event type names used for publisher dispatch.
const (
	EventTypeCreated       = "OrderCreated"
	EventTypeStatusChanged = "OrderStatusChanged"
	EventTypeCancelled     = "OrderCancelled"
)

// CreatedEvent is queued when a new order is placed.
type CreatedEvent struct {
	occurredOn time.Time
	orderID    kernel.UUID
	userID     string
}

// NewCreatedEvent creates an OrderCreated event for the given order.
func NewCreatedEvent(orderID kernel.UUID, userID string) CreatedEvent {
	return CreatedEvent{
		occurredOn: time.Now().UTC(),
		orderID:    orderID,
		userID:     userID,
	}
}

// OccurredOn returns the time the event was raised.
func (e CreatedEvent) OccurredOn() time.Time { return e.occurredOn }

// EventType returns "OrderCreated".
func (e CreatedEvent) EventType() string { return EventTypeCreated }

// AggregateID returns the order ID.
func (e CreatedEvent) AggregateID() string { return e.orderID.String() }

// UserID returns the ID of the user who placed the order.
func (e CreatedEvent) UserID() string { return e.userID }

// StatusChangedEvent is queued on every successful status transition,
// including preparation failure. It carries both ends of the transition.
type StatusChangedEvent struct {
	occurredOn     time.Time
	orderID        kernel.UUID
	previousStatus Status
	newStatus      Status
}

// NewStatusChangedEvent creates an OrderStatusChanged event.
func NewStatusChangedEvent(orderID kernel.UUID, previous, next Status) StatusChangedEvent {
	return StatusChangedEvent{
		occurredOn:     time.Now().UTC(),
		orderID:        orderID,
		previousStatus: previous,
		newStatus:      next,
	}
}

// OccurredOn returns the time the event was raised.
func (e StatusChangedEvent) OccurredOn() time.Time { return e.occurredOn }

// EventType returns "OrderStatusChanged".
func (e StatusChangedEvent) EventType() string { return EventTypeStatusChanged }

// AggregateID returns the order ID.
func (e StatusChangedEvent) AggregateID() string { return e.orderID.String() }

// PreviousStatus returns the status the order moved from.
func (e StatusChangedEvent) PreviousStatus() Status { return e.previousStatus }

// NewStatus returns the status the order moved to.
func (e StatusChangedEvent) NewStatus() Status { return e.newStatus }

// CancelledEvent is queued when an order is cancelled by the user or the counter.
type CancelledEvent struct {
	occurredOn  time.Time
	orderID     kernel.UUID
	cancelledBy CancelledBy
}

// NewCancelledEvent creates an OrderCancelled event.
func NewCancelledEvent(orderID kernel.UUID, cancelledBy CancelledBy) CancelledEvent {
	return CancelledEvent{
		occurredOn:  time.Now().UTC(),
		orderID:     orderID,
		cancelledBy: cancelledBy,
	}
}

// OccurredOn returns the time the event was raised.
func (e CancelledEvent) OccurredOn() time.Time { return e.occurredOn }

// EventType returns "OrderCancelled".
func (e CancelledEvent) EventType() string { return EventTypeCancelled }

// AggregateID returns the order ID.
func (e CancelledEvent) AggregateID() string { return e.orderID.String() }

// CancelledBy returns who cancelled the order.
func (e CancelledEvent) CancelledBy() CancelledBy { return e.cancelledBy }
