package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

func newTestRecord(t *testing.T, quantity int) *Record {
	t.Helper()
	r, _, err := NewRecord("p1", mustQuantity(t, quantity), "admin")
	require.NoError(t, err)
	r.ClearDomainEvents()
	return r
}

func Test_NewRecord(t *testing.T) {
	t.Run("creates record with initial ledger entry", func(t *testing.T) {
		r, entry, err := NewRecord("p1", mustQuantity(t, 5), "admin")
		require.NoError(t, err)

		assert.Equal(t, "p1", r.ProductID())
		assert.Equal(t, 5, r.Quantity().Value())
		assert.NoError(t, r.Validate())

		require.NoError(t, entry.Validate())
		assert.Equal(t, OperationInitial, entry.OperationType())
		assert.Equal(t, 0, entry.Before().Value())
		assert.Equal(t, 5, entry.After().Value())
		assert.Equal(t, 5, entry.Delta())
		assert.Equal(t, "admin", entry.Operator())

		events := r.DomainEvents()
		require.Len(t, events, 1)
		adjusted, ok := events[0].(StockAdjustedEvent)
		require.True(t, ok)
		assert.Equal(t, OperationInitial, adjusted.OperationType())
	})

	t.Run("empty product id", func(t *testing.T) {
		_, _, err := NewRecord("", mustQuantity(t, 5), "admin")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func Test_RestoreRecord(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		updatedAt := time.Now().UTC().Add(-time.Hour)

		r, err := RestoreRecord(id, "p1", mustQuantity(t, 7), updatedAt)
		require.NoError(t, err)

		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, 7, r.Quantity().Value())
		assert.Equal(t, updatedAt, r.UpdatedAt())
		assert.Empty(t, r.DomainEvents())
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		_, err := RestoreRecord(kernel.UUID{}, "p1", mustQuantity(t, 7), time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects empty product id", func(t *testing.T) {
		_, err := RestoreRecord(kernel.NewUUID(), "", mustQuantity(t, 7), time.Now())
		assert.Error(t, err)
	})
}

func Test_Record_Validate(t *testing.T) {
	var r *Record
	assert.ErrorIs(t, r.Validate(), ErrRecordIsNotConstructed)
	assert.ErrorIs(t, (&Record{}).Validate(), ErrRecordIsNotConstructed)
}

func Test_Record_AdjustTo(t *testing.T) {
	t.Run("absolute set with log entry", func(t *testing.T) {
		// restock correction 3 -> 10, delta 7
		r := newTestRecord(t, 3)

		entry, err := r.AdjustTo(10, OperationManualAdjustment, "restock", "admin")
		require.NoError(t, err)

		assert.Equal(t, 10, r.Quantity().Value())
		assert.Equal(t, 3, entry.Before().Value())
		assert.Equal(t, 10, entry.After().Value())
		assert.Equal(t, 7, entry.Delta())
		assert.Equal(t, "restock", entry.Reason())
		assert.Equal(t, "admin", entry.Operator())
		assert.True(t, entry.IsIncrease())
	})

	t.Run("adjusting down", func(t *testing.T) {
		r := newTestRecord(t, 10)

		entry, err := r.AdjustTo(4, OperationDamage, "spoiled batch", "admin")
		require.NoError(t, err)
		assert.Equal(t, -6, entry.Delta())
		assert.True(t, entry.IsDecrease())
	})

	t.Run("adjusting to zero", func(t *testing.T) {
		r := newTestRecord(t, 10)
		_, err := r.AdjustTo(0, OperationManualAdjustment, "clearance", "admin")
		require.NoError(t, err)
		assert.True(t, r.IsOutOfStock())
	})

	t.Run("negative target rejected without log entry", func(t *testing.T) {
		r := newTestRecord(t, 3)

		_, err := r.AdjustTo(-1, OperationManualAdjustment, "oops", "admin")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleBroken)
		assert.Equal(t, 3, r.Quantity().Value())
		assert.Empty(t, r.DomainEvents())
	})

	t.Run("invalid operation type", func(t *testing.T) {
		r := newTestRecord(t, 3)
		_, err := r.AdjustTo(5, OperationType("THEFT"), "reason", "admin")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("queues stock adjusted event", func(t *testing.T) {
		r := newTestRecord(t, 3)
		_, err := r.AdjustTo(10, OperationManualAdjustment, "restock", "admin")
		require.NoError(t, err)

		events := r.DomainEvents()
		require.Len(t, events, 1)
		adjusted, ok := events[0].(StockAdjustedEvent)
		require.True(t, ok)
		assert.Equal(t, "p1", adjusted.AggregateID())
		assert.Equal(t, 3, adjusted.PreviousQuantity().Value())
		assert.Equal(t, 10, adjusted.NewQuantity().Value())
		assert.Equal(t, OperationManualAdjustment, adjusted.OperationType())
	})
}

func Test_Record_Sell(t *testing.T) {
	t.Run("decrements and logs a sale", func(t *testing.T) {
		r := newTestRecord(t, 5)

		entry, err := r.Sell(mustQuantity(t, 2), "cashier")
		require.NoError(t, err)

		assert.Equal(t, 3, r.Quantity().Value())
		assert.Equal(t, OperationSale, entry.OperationType())
		assert.Equal(t, -2, entry.Delta())
		assert.Equal(t, "cashier", entry.Operator())
	})

	t.Run("selling the last units", func(t *testing.T) {
		r := newTestRecord(t, 2)
		_, err := r.Sell(mustQuantity(t, 2), "cashier")
		require.NoError(t, err)
		assert.True(t, r.IsOutOfStock())
	})

	t.Run("insufficient stock rejected with event", func(t *testing.T) {
		r := newTestRecord(t, 1)

		_, err := r.Sell(mustQuantity(t, 2), "cashier")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleBroken)
		assert.Contains(t, err.Error(), "insufficient stock")
		assert.Equal(t, 1, r.Quantity().Value())

		events := r.DomainEvents()
		require.Len(t, events, 1)
		insufficient, ok := events[0].(StockInsufficientEvent)
		require.True(t, ok)
		assert.Equal(t, "p1", insufficient.AggregateID())
		assert.Equal(t, 2, insufficient.RequestedQuantity().Value())
		assert.Equal(t, 1, insufficient.AvailableQuantity().Value())
	})
}

func Test_Record_Restock(t *testing.T) {
	t.Run("adds stock", func(t *testing.T) {
		r := newTestRecord(t, 3)

		entry, err := r.Restock(mustQuantity(t, 4), "weekly delivery", "admin")
		require.NoError(t, err)

		assert.Equal(t, 7, r.Quantity().Value())
		assert.Equal(t, OperationRestock, entry.OperationType())
		assert.Equal(t, 4, entry.Delta())
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		r := newTestRecord(t, 3)
		_, err := r.Restock(StockQuantity{}, "nothing", "admin")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_Record_StockChecks(t *testing.T) {
	r := newTestRecord(t, 3)

	assert.True(t, r.HasSufficientStock(mustQuantity(t, 3)))
	assert.True(t, r.HasSufficientStock(mustQuantity(t, 1)))
	assert.False(t, r.HasSufficientStock(mustQuantity(t, 4)))
	assert.False(t, r.IsOutOfStock())
}

func Test_Record_DomainEvents(t *testing.T) {
	r := newTestRecord(t, 5)
	_, err := r.Sell(mustQuantity(t, 1), "cashier")
	require.NoError(t, err)
	_, err = r.Sell(mustQuantity(t, 1), "cashier")
	require.NoError(t, err)

	require.Len(t, r.DomainEvents(), 2)

	r.ClearDomainEvents()
	assert.Empty(t, r.DomainEvents())
}

func Test_RestoreLogEntry(t *testing.T) {
	t.Run("restores persisted entry", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Minute)

		entry, err := RestoreLogEntry(id, "p1", mustQuantity(t, 3), mustQuantity(t, 10),
			OperationManualAdjustment, "restock", "admin", createdAt)
		require.NoError(t, err)

		assert.True(t, entry.ID().IsEqual(id))
		assert.Equal(t, 7, entry.Delta())
		assert.Equal(t, createdAt, entry.CreatedAt())
		assert.NoError(t, entry.Validate())
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		_, err := RestoreLogEntry(kernel.UUID{}, "p1", StockQuantity{}, StockQuantity{},
			OperationSale, "", "", time.Now())
		assert.Error(t, err)

		_, err = RestoreLogEntry(kernel.NewUUID(), "", StockQuantity{}, StockQuantity{},
			OperationSale, "", "", time.Now())
		assert.Error(t, err)

		_, err = RestoreLogEntry(kernel.NewUUID(), "p1", StockQuantity{}, StockQuantity{},
			OperationType("THEFT"), "", "", time.Now())
		assert.Error(t, err)
	})

	t.Run("zero value entry is not constructed", func(t *testing.T) {
		var entry LogEntry
		assert.ErrorIs(t, entry.Validate(), ErrLogEntryIsNotConstructed)
	})
}
