package inventory

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record was not created through
// NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// Record is the stock ledger aggregate for one product: the current quantity
// plus the rules for mutating it. Every mutation yields exactly one LogEntry
// that the caller persists in the same transaction as the record itself.
//
// Record holds no history; the ledger lines live in persistence and are read
// back through the repository. The aggregate only guards the invariant that
// quantity never goes negative.
type Record struct {
	id        kernel.UUID
	productID string
	quantity  StockQuantity
	updatedAt time.Time

	domainEvents []kernel.DomainEvent

	isConstructed bool
}

// NewRecord creates a stock record for a product, starting at the given
// quantity. An INITIAL ledger entry for the starting quantity is returned
// alongside; the caller persists both.
func NewRecord(productID string, initial StockQuantity, operator string) (*Record, LogEntry, error) {
	if productID == "" {
		return nil, LogEntry{}, errs.NewValueIsRequiredError("productId")
	}

	r := &Record{
		id:            kernel.NewUUID(),
		productID:     productID,
		quantity:      initial,
		updatedAt:     time.Now().UTC(),
		isConstructed: true,
	}

	entry := newLogEntry(productID, StockQuantity{}, initial, OperationInitial, "initial stock", operator)
	r.queueEvent(NewStockAdjustedEvent(productID, StockQuantity{}, initial, OperationInitial))
	return r, entry, nil
}

// RestoreRecord reconstructs a stock record from persisted state.
func RestoreRecord(id kernel.UUID, productID string, quantity StockQuantity, updatedAt time.Time) (*Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productId")
	}

	return &Record{
		id:            id,
		productID:     productID,
		quantity:      quantity,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Record was created through a factory function.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// ProductID returns the product this record tracks.
func (r *Record) ProductID() string {
	return r.productID
}

// Quantity returns the current stock level.
func (r *Record) Quantity() StockQuantity {
	return r.quantity
}

// UpdatedAt returns the time of the last mutation.
func (r *Record) UpdatedAt() time.Time {
	return r.updatedAt
}

// AdjustTo sets the quantity to an absolute target and returns the ledger
// entry for the change. A negative target is rejected with a BusinessRuleError
// and leaves the record untouched; no entry is produced.
func (r *Record) AdjustTo(target int, operationType OperationType, reason, operator string) (LogEntry, error) {
	if err := operationType.Validate(); err != nil {
		return LogEntry{}, err
	}
	if target < 0 {
		return LogEntry{}, errs.NewBusinessRuleErrorWithCause(
			"stock target must not be negative",
			fmt.Errorf("target quantity is %d", target),
		)
	}

	newQuantity := StockQuantity{value: target}
	return r.apply(newQuantity, operationType, reason, operator), nil
}

// Sell decrements the quantity by the requested amount and returns the SALE
// ledger entry. When stock does not cover the request the record is left
// untouched, a StockInsufficient event is queued, and a BusinessRuleError
// "insufficient stock" is returned.
func (r *Record) Sell(requested StockQuantity, operator string) (LogEntry, error) {
	newQuantity, err := r.quantity.Subtract(requested)
	if err != nil {
		r.queueEvent(NewStockInsufficientEvent(r.productID, requested, r.quantity))
		return LogEntry{}, err
	}

	return r.apply(newQuantity, OperationSale,
		fmt.Sprintf("sale of %s units", requested), operator), nil
}

// Restock increments the quantity and returns the RESTOCK ledger entry.
func (r *Record) Restock(amount StockQuantity, reason, operator string) (LogEntry, error) {
	if amount.IsZero() {
		return LogEntry{}, errs.NewValueIsInvalidErrorWithCause("restock amount",
			errors.New("must be greater than 0"))
	}

	return r.apply(r.quantity.Add(amount), OperationRestock, reason, operator), nil
}

// HasSufficientStock reports whether the current quantity covers the request.
func (r *Record) HasSufficientStock(requested StockQuantity) bool {
	return r.quantity.IsGreaterOrEqual(requested)
}

// IsOutOfStock reports whether the product is sold out.
func (r *Record) IsOutOfStock() bool {
	return r.quantity.IsZero()
}

// DomainEvents returns a copy of the queued events in the order they were raised.
func (r *Record) DomainEvents() []kernel.DomainEvent {
	events := make([]kernel.DomainEvent, len(r.domainEvents))
	copy(events, r.domainEvents)
	return events
}

// ClearDomainEvents drains the event queue after publication.
func (r *Record) ClearDomainEvents() {
	r.domainEvents = nil
}

// apply performs the mutation shared by every successful stock change: swap
// the quantity, touch updatedAt, queue a StockAdjusted event, and build the
// ledger entry from the before and after quantities.
func (r *Record) apply(newQuantity StockQuantity, operationType OperationType, reason, operator string) LogEntry {
	previous := r.quantity
	r.quantity = newQuantity
	r.updatedAt = time.Now().UTC()

	r.queueEvent(NewStockAdjustedEvent(r.productID, previous, newQuantity, operationType))
	return newLogEntry(r.productID, previous, newQuantity, operationType, reason, operator)
}

func (r *Record) queueEvent(event kernel.DomainEvent) {
	r.domainEvents = append(r.domainEvents, event)
}
