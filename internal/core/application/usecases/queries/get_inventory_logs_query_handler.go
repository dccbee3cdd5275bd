package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetInventoryLogsQueryHandler retrieves pages of a product's stock ledger
// from the database, newest entry first.
type GetInventoryLogsQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryLogsQueryHandler creates a handler for ledger queries.
func NewGetInventoryLogsQueryHandler(db *gorm.DB) GetInventoryLogsQueryHandler {
	return GetInventoryLogsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetInventoryLogsQueryHandler) Handle(ctx context.Context, query GetInventoryLogsQuery) (GetInventoryLogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInventoryLogsQueryResponse{}, err
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM inventory_logs WHERE product_id = ?", query.ProductID()).
		Scan(&total).Error; err != nil {
		return GetInventoryLogsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			before_quantity,
			after_quantity,
			operation_type,
			reason,
			operator,
			created_at
		FROM inventory_logs
		WHERE product_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, query.ProductID(), query.Limit(), query.Offset()).Rows()
	if err != nil {
		return GetInventoryLogsQueryResponse{}, err
	}
	defer rows.Close()

	logs := make([]GetInventoryLogResponse, 0, query.Limit())

	for rows.Next() {
		var entry GetInventoryLogResponse
		if err = rows.Scan(&entry.ID, &entry.ProductID, &entry.Before, &entry.After,
			&entry.OperationType, &entry.Reason, &entry.Operator, &entry.CreatedAt); err != nil {
			return GetInventoryLogsQueryResponse{}, err
		}
		entry.Delta = entry.After - entry.Before
		logs = append(logs, entry)
	}

	if err = rows.Err(); err != nil {
		return GetInventoryLogsQueryResponse{}, err
	}

	return GetInventoryLogsQueryResponse{
		Logs:    logs,
		Total:   total,
		HasMore: int64(query.Offset()+len(logs)) < total,
	}, nil
}
