package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Soft-deleted orders are treated as missing.
// The available transitions are derived from the status at read time using
// the same transition table the aggregate enforces.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		resp         GetOrderQueryResponse
		id           uuid.UUID
		status       int
		cancelledBy  sql.NullString
		errorMessage sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			description,
			status,
			cancelled_by,
			error_message,
			created_at,
			updated_at
		FROM orders
		WHERE id = ? AND deleted_at IS NULL
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&resp.UserID,
		&resp.Description,
		&status,
		&cancelledBy,
		&errorMessage,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID

	orderStatus := order.Status(status)
	resp.Status = orderStatus.String()
	resp.AvailableTransitions = statusNames(orderStatus.AvailableTransitions())

	if cancelledBy.Valid {
		resp.CancelledBy = &cancelledBy.String
	}
	if errorMessage.Valid {
		resp.ErrorMessage = &errorMessage.String
	}

	items, total, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items
	resp.TotalAmount = total

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderItemResponse, float64, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			name,
			quantity,
			price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]GetOrderItemResponse, 0)
	var total float64

	for rows.Next() {
		var item GetOrderItemResponse
		if err = rows.Scan(&item.ID, &item.ProductID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, 0, err
		}
		total += float64(item.Quantity) * item.Price
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func statusNames(statuses []order.Status) []string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}
