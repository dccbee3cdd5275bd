package orderrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database, including the item diff:
// changed lines are upserted and lines no longer on the order are removed.
// Columns are listed explicitly so cleared nullable fields (errorMessage
// after a retried transition) are written back as NULL.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("user_id", "description", "status", "cancelled_by", "error_message", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.syncItems(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// syncItems reconciles the persisted lines with the aggregate's current ones.
func (r *GormOrderRepository) syncItems(ctx context.Context, dto OrderDTO) error {
	keepIDs := make([]string, 0, len(dto.Items))
	for _, item := range dto.Items {
		keepIDs = append(keepIDs, item.ID)
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND id NOT IN ?", dto.ID, keepIDs).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	for _, item := range dto.Items {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).
			Create(&item).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order with its items by ID. Soft-deleted orders are not found.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves all orders placed by a user, newest first.
func (r *GormOrderRepository) GetByUserID(ctx context.Context, userID string) ([]*order.Order, error) {
	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC").
		Find(&dtos, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves orders matching the filter, newest first, plus the total
// count before pagination.
func (r *GormOrderRepository) GetAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&OrderDTO{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", int(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []OrderDTO
	if err := query.Preload("Items").
		Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	orders, err := toDomainSlice(dtos)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// GetAllOrderedBefore retrieves orders still in Ordered status placed before
// the cutoff. Used by the stale order sweep.
func (r *GormOrderRepository) GetAllOrderedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").
		Find(&dtos, "status = ? AND created_at < ?", int(order.Ordered), cutoff).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete soft-deletes an order. The items stay untouched for audit.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
