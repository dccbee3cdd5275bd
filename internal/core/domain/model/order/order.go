package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// CancelledBy identifies who cancelled an order.
type CancelledBy string

const (
	// CancelledByUser means the customer cancelled their own order.
	CancelledByUser CancelledBy = "user"

	// CancelledByCounter means staff cancelled the order at the counter.
	CancelledByCounter CancelledBy = "counter"
)

// Validate checks that the value is one of the two defined cancellers.
func (c CancelledBy) Validate() error {
	if c != CancelledByUser && c != CancelledByCounter {
		return errs.NewValueIsInvalidErrorWithCause("cancelledBy",
			fmt.Errorf("%q is not a valid canceller", string(c)))
	}
	return nil
}

// Order is the aggregate root for the order lifecycle, from placement through
// confirmation and preparation to pickup, cancellation, or failure.
//
// Order enforces these invariants:
//   - Must have a valid unique identifier and a non-empty user ID
//   - Must contain at least one item at all times after creation
//   - Status transitions follow the canonical transition table in status.go
//   - Can only be created through NewOrder or RestoreOrder
//
// Mutations queue domain events. The aggregate never talks to persistence or
// publishers itself; a command handler persists the new state, publishes the
// queued events, and drains the queue exactly once per command.
type Order struct {
	id          kernel.UUID
	userID      string
	description string
	items       []Item
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	// cancelledBy records who cancelled the order (nil while not cancelled)
	cancelledBy *CancelledBy

	// errorMessage carries the failure reason while status is PreparationFailed
	errorMessage *string

	// domainEvents holds queued events until a command handler drains them
	domainEvents []kernel.DomainEvent

	isConstructed bool
}

// NewOrder creates a new Order in Ordered status and queues an OrderCreated
// event. It fails with a validation error when the user ID is empty, the item
// list is empty, or any item fails its own validation.
//
// Example:
//
//	item, _ := order.NewItem("i1", "p1", "Beef Noodles", 2, 50)
//	o, err := order.NewOrder(kernel.NewUUID(), "U1001", []order.Item{item}, "no onions")
func NewOrder(id kernel.UUID, userID string, items []Item, description string) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Ordered,
		description:   description,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.queueEvent(NewCreatedEvent(o.id, o.userID))
	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. No events are
// queued; the restored aggregate reflects history, it does not re-create it.
func RestoreOrder(
	id kernel.UUID,
	userID string,
	items []Item,
	description string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	cancelledBy *CancelledBy,
	errorMessage *string,
) (*Order, error) {
	o := &Order{
		description:   description,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		cancelledBy:   cancelledBy,
		errorMessage:  errorMessage,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was properly constructed through a factory
// function. Call this when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the ID of the user who placed the order.
func (o *Order) UserID() string {
	return o.userID
}

// Description returns the free-form note attached to the order.
func (o *Order) Description() string {
	return o.description
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CancelledBy returns who cancelled the order, or nil while not cancelled.
func (o *Order) CancelledBy() *CancelledBy {
	return o.cancelledBy
}

// ErrorMessage returns the preparation failure reason, or nil when none is set.
func (o *Order) ErrorMessage() *string {
	return o.errorMessage
}

// TotalAmount returns the sum of all line totals. It is always recomputed
// from the current items, never cached.
func (o *Order) TotalAmount() float64 {
	var total float64
	for _, item := range o.items {
		total += item.TotalPrice()
	}
	return total
}

// AvailableTransitions returns the statuses this order may move to next,
// read from the same canonical table that validates transitions.
func (o *Order) AvailableTransitions() []Status {
	return o.status.AvailableTransitions()
}

// Confirm moves the order from Ordered to Confirmed.
// On an illegal transition the aggregate is left unchanged.
func (o *Order) Confirm() error {
	return o.transitionTo(Confirmed)
}

// StartPreparation moves the order from Confirmed to InPreparation.
func (o *Order) StartPreparation() error {
	return o.transitionTo(InPreparation)
}

// MarkReadyForPickup moves the order from InPreparation to ReadyForPickup.
func (o *Order) MarkReadyForPickup() error {
	return o.transitionTo(ReadyForPickup)
}

// Complete moves the order from ReadyForPickup to Completed, the end of the
// happy path.
func (o *Order) Complete() error {
	return o.transitionTo(Completed)
}

// Cancel cancels the order on behalf of the given canceller. Only orders in
// Ordered or Confirmed status can be cancelled; afterwards the status is
// Cancelled, cancelledBy is recorded, the error message is cleared, and an
// OrderCancelled event is queued.
func (o *Order) Cancel(cancelledBy CancelledBy) error {
	if err := cancelledBy.Validate(); err != nil {
		return err
	}

	if !o.status.IsCancellable() {
		return errs.NewBusinessRuleErrorWithCause(
			"order can only be cancelled while ordered or confirmed",
			fmt.Errorf("current status is %s", o.status),
		)
	}

	o.status = Cancelled
	o.cancelledBy = &cancelledBy
	o.errorMessage = nil
	o.updatedAt = time.Now().UTC()

	o.queueEvent(NewCancelledEvent(o.id, cancelledBy))
	return nil
}

// Fail marks the order as failed during preparation and records the reason.
// Only orders in InPreparation status can fail. A StatusChanged event is
// queued so downstream handlers see the transition like any other.
func (o *Order) Fail(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("failure reason")
	}

	if o.status != InPreparation {
		return errs.NewBusinessRuleErrorWithCause(
			"order can only fail while in preparation",
			fmt.Errorf("current status is %s", o.status),
		)
	}

	previous := o.status
	o.status = PreparationFailed
	o.errorMessage = &reason
	o.updatedAt = time.Now().UTC()

	o.queueEvent(NewStatusChangedEvent(o.id, previous, o.status))
	return nil
}

// DomainEvents returns a copy of the queued events in the order they were raised.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	events := make([]kernel.DomainEvent, len(o.domainEvents))
	copy(events, o.domainEvents)
	return events
}

// ClearDomainEvents drains the event queue. A command handler calls this
// exactly once, after all queued events have been published.
func (o *Order) ClearDomainEvents() {
	o.domainEvents = nil
}

// transitionTo performs a validated status transition: on success it mutates
// the status, clears the error message, touches updatedAt, and queues a
// StatusChanged event; on failure the aggregate is left untouched and the
// BusinessRuleError propagates.
func (o *Order) transitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	previous := o.status
	o.status = newStatus
	o.errorMessage = nil
	o.updatedAt = time.Now().UTC()

	o.queueEvent(NewStatusChangedEvent(o.id, previous, newStatus))
	return nil
}

func (o *Order) queueEvent(event kernel.DomainEvent) {
	o.domainEvents = append(o.domainEvents, event)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order must contain at least one item")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
