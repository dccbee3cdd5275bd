package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderListQueryHandler retrieves pages of order summaries from the database.
type GetOrderListQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderListQueryHandler creates a handler for paginated order listings.
func NewGetOrderListQueryHandler(db *gorm.DB) GetOrderListQueryHandler {
	return GetOrderListQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first; the item
// count and total amount of each summary are computed in SQL so the list
// never loads full aggregates.
func (h GetOrderListQueryHandler) Handle(ctx context.Context, query GetOrderListQuery) (GetOrderListQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderListQueryResponse{}, err
	}

	where := "deleted_at IS NULL"
	args := make([]any, 0, 4)

	if query.UserID() != nil {
		where += " AND user_id = ?"
		args = append(args, *query.UserID())
	}
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, int(*query.Status()))
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return GetOrderListQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.user_id,
			o.status,
			o.created_at,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
			(SELECT COALESCE(SUM(i.quantity * i.price), 0) FROM order_items i WHERE i.order_id = o.id) AS total_amount
		FROM orders o
		WHERE `+where+`
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.Offset())...).Rows()
	if err != nil {
		return GetOrderListQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]GetOrderListItemResponse, 0, query.Limit())

	for rows.Next() {
		var (
			summary GetOrderListItemResponse
			id      uuid.UUID
			status  int
		)

		if err = rows.Scan(&id, &summary.UserID, &status, &summary.CreatedAt,
			&summary.ItemCount, &summary.TotalAmount); err != nil {
			return GetOrderListQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetOrderListQueryResponse{}, idErr
		}
		summary.ID = orderID
		summary.Status = order.Status(status).String()

		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return GetOrderListQueryResponse{}, err
	}

	return GetOrderListQueryResponse{
		Orders:  orders,
		Total:   total,
		HasMore: int64(query.Offset()+len(orders)) < total,
	}, nil
}
