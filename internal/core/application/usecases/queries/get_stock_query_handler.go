package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStockQueryHandler retrieves a product's stock level from the database.
// This is a plain read; it takes no lock and may be stale the moment it
// returns. Sales never rely on it.
type GetStockQueryHandler struct {
	db *gorm.DB
}

// NewGetStockQueryHandler creates a handler for stock level queries.
func NewGetStockQueryHandler(db *gorm.DB) GetStockQueryHandler {
	return GetStockQueryHandler{db: db}
}

// Handle executes the query.
func (h GetStockQueryHandler) Handle(ctx context.Context, query GetStockQuery) (GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockQueryResponse{}, err
	}

	var resp GetStockQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			updated_at
		FROM inventory_records
		WHERE product_id = ?
	`, query.ProductID()).Row()

	err := row.Scan(&resp.ProductID, &resp.Quantity, &resp.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetStockQueryResponse{}, errs.NewObjectNotFoundError("productId", query.ProductID())
	}
	if err != nil {
		return GetStockQueryResponse{}, err
	}

	resp.OutOfStock = resp.Quantity == 0
	return resp, nil
}
