package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
)

const timeFormat = time.RFC3339

// OrderItemDTO is one order line in the JSON read model.
type OrderItemDTO struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderDTO is the full order JSON read model. AvailableTransitions lists the
// status names the order may move to next.
type OrderDTO struct {
	ID                   string         `json:"id"`
	UserID               string         `json:"userId"`
	Description          string         `json:"description"`
	Status               string         `json:"status"`
	Items                []OrderItemDTO `json:"items"`
	TotalAmount          float64        `json:"totalAmount"`
	CancelledBy          *string        `json:"cancelledBy,omitempty"`
	ErrorMessage         *string        `json:"errorMessage,omitempty"`
	AvailableTransitions []string       `json:"availableTransitions"`
	CreatedAt            string         `json:"createdAt"`
	UpdatedAt            string         `json:"updatedAt"`
}

func toOrderDTO(resp queries.GetOrderQueryResponse) OrderDTO {
	items := make([]OrderItemDTO, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemDTO{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return OrderDTO{
		ID:                   resp.ID.String(),
		UserID:               resp.UserID,
		Description:          resp.Description,
		Status:               resp.Status,
		Items:                items,
		TotalAmount:          resp.TotalAmount,
		CancelledBy:          resp.CancelledBy,
		ErrorMessage:         resp.ErrorMessage,
		AvailableTransitions: resp.AvailableTransitions,
		CreatedAt:            resp.CreatedAt.Format(timeFormat),
		UpdatedAt:            resp.UpdatedAt.Format(timeFormat),
	}
}

// OrderSummaryDTO is one order in the JSON list read model.
type OrderSummaryDTO struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Status      string  `json:"status"`
	ItemCount   int     `json:"itemCount"`
	TotalAmount float64 `json:"totalAmount"`
	CreatedAt   string  `json:"createdAt"`
}

// OrderListDTO is a page of order summaries.
type OrderListDTO struct {
	Orders  []OrderSummaryDTO `json:"orders"`
	Total   int64             `json:"total"`
	HasMore bool              `json:"hasMore"`
}

func toOrderListDTO(resp queries.GetOrderListQueryResponse) OrderListDTO {
	orders := make([]OrderSummaryDTO, 0, len(resp.Orders))
	for _, summary := range resp.Orders {
		orders = append(orders, OrderSummaryDTO{
			ID:          summary.ID.String(),
			UserID:      summary.UserID,
			Status:      summary.Status,
			ItemCount:   summary.ItemCount,
			TotalAmount: summary.TotalAmount,
			CreatedAt:   summary.CreatedAt.Format(timeFormat),
		})
	}

	return OrderListDTO{
		Orders:  orders,
		Total:   resp.Total,
		HasMore: resp.HasMore,
	}
}

// InventoryLogDTO is one ledger line in the JSON read model.
type InventoryLogDTO struct {
	ID            string `json:"id"`
	ProductID     string `json:"productId"`
	Before        int    `json:"before"`
	After         int    `json:"after"`
	Delta         int    `json:"delta"`
	OperationType string `json:"operationType"`
	Reason        string `json:"reason"`
	Operator      string `json:"operator"`
	CreatedAt     string `json:"createdAt"`
}

// InventoryLogsDTO is a page of ledger lines, newest first.
type InventoryLogsDTO struct {
	Logs    []InventoryLogDTO `json:"logs"`
	Total   int64             `json:"total"`
	HasMore bool              `json:"hasMore"`
}

func toInventoryLogsDTO(resp queries.GetInventoryLogsQueryResponse) InventoryLogsDTO {
	logs := make([]InventoryLogDTO, 0, len(resp.Logs))
	for _, entry := range resp.Logs {
		logs = append(logs, InventoryLogDTO{
			ID:            entry.ID,
			ProductID:     entry.ProductID,
			Before:        entry.Before,
			After:         entry.After,
			Delta:         entry.Delta,
			OperationType: entry.OperationType,
			Reason:        entry.Reason,
			Operator:      entry.Operator,
			CreatedAt:     entry.CreatedAt.Format(timeFormat),
		})
	}

	return InventoryLogsDTO{
		Logs:    logs,
		Total:   resp.Total,
		HasMore: resp.HasMore,
	}
}
