package inventoryrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/inventory"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetByProductID retrieves the stock record for a product without locking.
func (r *GormInventoryRepository) GetByProductID(ctx context.Context, productID string) (*inventory.Record, error) {
	return r.get(ctx, productID, false)
}

// GetByProductIDForUpdate retrieves the stock record with SELECT ... FOR
// UPDATE. The row lock is held until the surrounding transaction commits or
// rolls back, so concurrent sales of the same product serialize here; the
// caller that waited re-reads the already decremented quantity. This is the
// transactional half of the no-oversell invariant.
func (r *GormInventoryRepository) GetByProductIDForUpdate(ctx context.Context, productID string) (*inventory.Record, error) {
	return r.get(ctx, productID, true)
}

func (r *GormInventoryRepository) get(ctx context.Context, productID string, forUpdate bool) (*inventory.Record, error) {
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productId")
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto RecordDTO
	if err := query.First(&dto, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", productID)
		}
		return nil, err
	}

	return recordToDomain(dto)
}

// Add persists a new stock record.
func (r *GormInventoryRepository) Add(ctx context.Context, record *inventory.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := recordFromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// Save persists the current quantity of an existing stock record.
func (r *GormInventoryRepository) Save(ctx context.Context, record *inventory.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := recordFromDomain(record)
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("id = ?", dto.ID).
		Select("quantity", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", record.ProductID())
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// AppendLog persists one ledger entry. Entries are never updated or deleted.
func (r *GormInventoryRepository) AppendLog(ctx context.Context, entry inventory.LogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := logFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetLogs retrieves ledger entries for a product, newest first, plus the
// total count before pagination.
func (r *GormInventoryRepository) GetLogs(ctx context.Context, productID string, limit, offset int) ([]inventory.LogEntry, int64, error) {
	if productID == "" {
		return nil, 0, errs.NewValueIsRequiredError("productId")
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&LogDTO{}).
		Where("product_id = ?", productID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []LogDTO
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]inventory.LogEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := logToDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}

	return entries, total, nil
}
