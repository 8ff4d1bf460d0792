package inventoryrepo

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/store"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add lists a book in a store.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *store.InventoryLine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("bookId", aggregate.BookID(), err)
		}
		return errs.NewTransientStorageError("add inventory line", err)
	}

	r.tracker.TrackAggregate(aggregate.StoreID()+"/"+aggregate.BookID(), aggregate)
	return nil
}

// Get retrieves one inventory line by its composite key.
func (r *GormInventoryRepository) Get(ctx context.Context, storeID string, bookID string) (*store.InventoryLine, error) {
	var dto InventoryLineDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "store_id = ? AND book_id = ?", storeID, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bookId", bookID)
		}
		return nil, errs.NewTransientStorageError("get inventory line", err)
	}

	return toDomain(dto)
}

// AddStock increments stock unconditionally as one atomic operation.
func (r *GormInventoryRepository) AddStock(ctx context.Context, storeID string, bookID string, delta int64) error {
	result := r.db.WithContext(ctx).Model(&InventoryLineDTO{}).
		Where("store_id = ? AND book_id = ?", storeID, bookID).
		UpdateColumn("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return errs.NewTransientStorageError("add stock", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bookId", bookID)
	}

	return nil
}

// DeductStock decrements stock with the minimum-stock guard folded into
// the same statement. Zero rows affected means the line is missing or the
// stock is below count; both surface as stock level low. This conditional
// update is the sole defense against concurrent overselling.
func (r *GormInventoryRepository) DeductStock(ctx context.Context, storeID string, bookID string, count int64) error {
	result := r.db.WithContext(ctx).Model(&InventoryLineDTO{}).
		Where("store_id = ? AND book_id = ? AND stock >= ?", storeID, bookID, count).
		UpdateColumn("stock", gorm.Expr("stock - ?", count))
	if result.Error != nil {
		return errs.NewTransientStorageError("deduct stock", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedError("stock level low", bookID)
	}

	return nil
}
