// Package inventory contains the stock ledger aggregate and its supporting
// types.
//
//   - Record: per-product aggregate holding the current quantity. Mutations
//     (AdjustTo, Sell, Restock) each return exactly one LogEntry that the
//     caller persists in the same transaction.
//   - StockQuantity: non-negative unit count; Subtract refuses to go negative,
//     which is the domain half of the no-oversell guarantee. The transactional
//     half (row locking) lives in the persistence adapter.
//   - LogEntry: one append-only line of the audit ledger, with before/after
//     quantities, a derived delta, the operation type, reason, and operator.
//   - OperationType: closed classification of mutations (sale, restock,
//     manual adjustment, return, damage, initial).
//   - StockAdjustedEvent, StockInsufficientEvent: domain events queued by the
//     aggregate.
package inventory
