// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational tables with indexing for the two
// hot read paths: by user and by status. DeletedAt implements the soft
// delete: deleted orders stay in storage but vanish from every read.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       string    `gorm:"index"`
	Description  string
	Status       int `gorm:"index"`
	CancelledBy  *string
	ErrorMessage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line in the database.
type OrderItemDTO struct {
	ID        string    `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID string
	Name      string
	Quantity  int
	Price     float64
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var cancelledBy *string
	if by := aggregate.CancelledBy(); by != nil {
		raw := string(*by)
		cancelledBy = &raw
	}

	orderID := aggregate.ID().Bytes()
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:        item.ID(),
			OrderID:   orderID,
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		UserID:       aggregate.UserID(),
		Description:  aggregate.Description(),
		Status:       int(aggregate.Status()),
		CancelledBy:  cancelledBy,
		ErrorMessage: aggregate.ErrorMessage(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Items:        itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ID, itemDTO.ProductID, itemDTO.Name,
			itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var cancelledBy *order.CancelledBy
	if dto.CancelledBy != nil {
		by := order.CancelledBy(*dto.CancelledBy)
		cancelledBy = &by
	}

	return order.RestoreOrder(id, dto.UserID, items, dto.Description,
		order.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt, cancelledBy, dto.ErrorMessage)
}
