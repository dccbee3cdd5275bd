package inventory

import "time"

// Event type names used for publisher dispatch.
const (
	EventTypeStockAdjusted     = "StockAdjusted"
	EventTypeStockInsufficient = "StockInsufficient"
)

// StockAdjustedEvent is queued on every successful stock mutation.
type StockAdjustedEvent struct {
	occurredOn       time.Time
	productID        string
	previousQuantity StockQuantity
	newQuantity      StockQuantity
	operationType    OperationType
}

// NewStockAdjustedEvent creates a StockAdjusted event.
func NewStockAdjustedEvent(productID string, previous, next StockQuantity, operationType OperationType) StockAdjustedEvent {
	return StockAdjustedEvent{
		occurredOn:       time.Now().UTC(),
		productID:        productID,
		previousQuantity: previous,
		newQuantity:      next,
		operationType:    operationType,
	}
}

// OccurredOn returns the time the event was raised.
func (e StockAdjustedEvent) OccurredOn() time.Time { return e.occurredOn }

// EventType returns "StockAdjusted".
func (e StockAdjustedEvent) EventType() string { return EventTypeStockAdjusted }

// AggregateID returns the product ID.
func (e StockAdjustedEvent) AggregateID() string { return e.productID }

// PreviousQuantity returns the quantity before the mutation.
func (e StockAdjustedEvent) PreviousQuantity() StockQuantity { return e.previousQuantity }

// NewQuantity returns the quantity after the mutation.
func (e StockAdjustedEvent) NewQuantity() StockQuantity { return e.newQuantity }

// OperationType returns the classification of the mutation.
func (e StockAdjustedEvent) OperationType() OperationType { return e.operationType }

// StockInsufficientEvent is queued when a sale is rejected because stock does
// not cover the request. The sale itself fails; the event lets observers track
// demand the shop could not serve.
type StockInsufficientEvent struct {
	occurredOn        time.Time
	productID         string
	requestedQuantity StockQuantity
	availableQuantity StockQuantity
}

// NewStockInsufficientEvent creates a StockInsufficient event.
func NewStockInsufficientEvent(productID string, requested, available StockQuantity) StockInsufficientEvent {
	return StockInsufficientEvent{
		occurredOn:        time.Now().UTC(),
		productID:         productID,
		requestedQuantity: requested,
		availableQuantity: available,
	}
}

// OccurredOn returns the time the event was raised.
func (e StockInsufficientEvent) OccurredOn() time.Time { return e.occurredOn }

// EventType returns "StockInsufficient".
func (e StockInsufficientEvent) EventType() string { return EventTypeStockInsufficient }

// AggregateID returns the product ID.
func (e StockInsufficientEvent) AggregateID() string { return e.productID }

// RequestedQuantity returns how much the rejected sale asked for.
func (e StockInsufficientEvent) RequestedQuantity() StockQuantity { return e.requestedQuantity }

// AvailableQuantity returns how much stock was available at rejection time.
func (e StockInsufficientEvent) AvailableQuantity() StockQuantity { return e.availableQuantity }
