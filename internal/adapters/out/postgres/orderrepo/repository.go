package orderrepo

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order header and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	header, lines := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&header).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("orderId", aggregate.ID(), err)
		}
		return errs.NewTransientStorageError("add order", err)
	}
	if err := r.db.WithContext(ctx).Create(&lines).Error; err != nil {
		return errs.NewTransientStorageError("add order lines", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order header with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	var header OrderDTO
	if err := r.db.WithContext(ctx).First(&header, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, errs.NewTransientStorageError("get order", err)
	}

	var lines []OrderLineDTO
	if err := r.db.WithContext(ctx).Find(&lines, "order_id = ?", id).Error; err != nil {
		return nil, errs.NewTransientStorageError("get order lines", err)
	}

	return toDomain(header, lines)
}

// Delete removes the lines and the header. Idempotent: deleting an
// already-settled order affects no rows and is not an error.
func (r *GormOrderRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&OrderLineDTO{}, "order_id = ?", id).Error; err != nil {
		return errs.NewTransientStorageError("delete order lines", err)
	}
	if err := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id).Error; err != nil {
		return errs.NewTransientStorageError("delete order", err)
	}

	return nil
}
