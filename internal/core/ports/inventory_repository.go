package ports

import (
	"context"

	"foodorder/internal/core/domain/model/inventory"
)

// InventoryRepository defines the persistence contract for stock records and
// their ledger. Save and AppendLog must be called inside the same unit of
// work so a stock mutation and its ledger entry commit or roll back together.
type InventoryRepository interface {
	// GetByProductID retrieves the stock record for a product.
	GetByProductID(ctx context.Context, productID string) (*inventory.Record, error)

	// GetByProductIDForUpdate retrieves the stock record with a pessimistic
	// row lock, blocking concurrent callers until the surrounding
	// transaction ends. Callers must hold an active unit of work.
	GetByProductIDForUpdate(ctx context.Context, productID string) (*inventory.Record, error)

	// Add persists a new stock record.
	Add(ctx context.Context, record *inventory.Record) error

	// Save persists the current quantity of an existing stock record.
	Save(ctx context.Context, record *inventory.Record) error

	// AppendLog persists one immutable ledger entry.
	AppendLog(ctx context.Context, entry inventory.LogEntry) error

	// GetLogs retrieves ledger entries for a product in reverse chronological
	// order, along with the total count before limit/offset were applied.
	GetLogs(ctx context.Context, productID string, limit, offset int) ([]inventory.LogEntry, int64, error)
}
