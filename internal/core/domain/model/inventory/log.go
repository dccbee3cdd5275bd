package inventory

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrLogEntryIsNotConstructed is returned when a LogEntry was not created
// through newLogEntry or RestoreLogEntry.
var ErrLogEntryIsNotConstructed = errors.New("LogEntry must be created via Record methods or RestoreLogEntry")

// LogEntry is one immutable line of the stock ledger: the before and after
// quantities of a single mutation, who performed it and why. Entries are
// append-only; nothing in the codebase alters one after creation.
type LogEntry struct {
	id            kernel.UUID
	productID     string
	before        StockQuantity
	after         StockQuantity
	operationType OperationType
	reason        string
	operator      string
	createdAt     time.Time

	isConstructed bool
}

// newLogEntry is called by Record mutations; the delta is derived, never passed.
func newLogEntry(productID string, before, after StockQuantity, operationType OperationType, reason, operator string) LogEntry {
	return LogEntry{
		id:            kernel.NewUUID(),
		productID:     productID,
		before:        before,
		after:         after,
		operationType: operationType,
		reason:        reason,
		operator:      operator,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}
}

// RestoreLogEntry reconstructs a ledger line from persisted state.
func RestoreLogEntry(
	id kernel.UUID,
	productID string,
	before, after StockQuantity,
	operationType OperationType,
	reason, operator string,
	createdAt time.Time,
) (LogEntry, error) {
	if err := errors.Join(
		id.Validate(),
		operationType.Validate(),
	); err != nil {
		return LogEntry{}, err
	}
	if productID == "" {
		return LogEntry{}, errs.NewValueIsRequiredError("productId")
	}

	return LogEntry{
		id:            id,
		productID:     productID,
		before:        before,
		after:         after,
		operationType: operationType,
		reason:        reason,
		operator:      operator,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry came from a Record mutation or RestoreLogEntry.
func (l LogEntry) Validate() error {
	if !l.isConstructed {
		return ErrLogEntryIsNotConstructed
	}
	return nil
}

// ID returns the ledger line identifier.
func (l LogEntry) ID() kernel.UUID {
	return l.id
}

// ProductID returns the product the mutation applied to.
func (l LogEntry) ProductID() string {
	return l.productID
}

// Before returns the quantity before the mutation.
func (l LogEntry) Before() StockQuantity {
	return l.before
}

// After returns the quantity after the mutation.
func (l LogEntry) After() StockQuantity {
	return l.after
}

// Delta returns after minus before. Negative for sales and damage.
func (l LogEntry) Delta() int {
	return l.after.Value() - l.before.Value()
}

// OperationType returns the classification of the mutation.
func (l LogEntry) OperationType() OperationType {
	return l.operationType
}

// Reason returns the free-form reason given by the operator.
func (l LogEntry) Reason() string {
	return l.reason
}

// Operator returns who performed the mutation.
func (l LogEntry) Operator() string {
	return l.operator
}

// CreatedAt returns when the mutation happened.
func (l LogEntry) CreatedAt() time.Time {
	return l.createdAt
}

// IsIncrease reports whether the mutation added stock.
func (l LogEntry) IsIncrease() bool {
	return l.Delta() > 0
}

// IsDecrease reports whether the mutation removed stock.
func (l LogEntry) IsDecrease() bool {
	return l.Delta() < 0
}
