// Package inventoryrepo provides data transfer objects and mapping functions
// for stock record and ledger persistence. The repository guarantees the
// transactional half of the no-oversell invariant through pessimistic row
// locks on the stock record.
package inventoryrepo

import (
	"time"

	"foodorder/internal/core/domain/model/inventory"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for a product's stock record.
// One row per product; concurrent sales contend on this row's lock.
type RecordDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID string    `gorm:"uniqueIndex"`
	Quantity  int
	UpdatedAt time.Time
}

// TableName specifies the database table name for stock records.
func (RecordDTO) TableName() string {
	return "inventory_records"
}

// LogDTO represents one immutable ledger line in the database.
// Rows are only ever inserted.
type LogDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID      string    `gorm:"index"`
	BeforeQuantity int
	AfterQuantity  int
	OperationType  string
	Reason         string
	Operator       string
	CreatedAt      time.Time `gorm:"index"`
}

// TableName specifies the database table name for ledger entries.
func (LogDTO) TableName() string {
	return "inventory_logs"
}

// recordFromDomain converts a stock record aggregate to its database representation.
func recordFromDomain(record *inventory.Record) RecordDTO {
	return RecordDTO{
		ID:        record.ID().Bytes(),
		ProductID: record.ProductID(),
		Quantity:  record.Quantity().Value(),
		UpdatedAt: record.UpdatedAt(),
	}
}

// recordToDomain converts a database DTO to a stock record aggregate.
func recordToDomain(dto RecordDTO) (*inventory.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := inventory.NewStockQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreRecord(id, dto.ProductID, quantity, dto.UpdatedAt)
}

// logFromDomain converts a ledger entry to its database representation.
func logFromDomain(entry inventory.LogEntry) LogDTO {
	return LogDTO{
		ID:             entry.ID().Bytes(),
		ProductID:      entry.ProductID(),
		BeforeQuantity: entry.Before().Value(),
		AfterQuantity:  entry.After().Value(),
		OperationType:  entry.OperationType().String(),
		Reason:         entry.Reason(),
		Operator:       entry.Operator(),
		CreatedAt:      entry.CreatedAt(),
	}
}

// logToDomain converts a database DTO to a ledger entry.
func logToDomain(dto LogDTO) (inventory.LogEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return inventory.LogEntry{}, err
	}

	before, err := inventory.NewStockQuantity(dto.BeforeQuantity)
	if err != nil {
		return inventory.LogEntry{}, err
	}

	after, err := inventory.NewStockQuantity(dto.AfterQuantity)
	if err != nil {
		return inventory.LogEntry{}, err
	}

	return inventory.RestoreLogEntry(id, dto.ProductID, before, after,
		inventory.OperationType(dto.OperationType), dto.Reason, dto.Operator, dto.CreatedAt)
}
