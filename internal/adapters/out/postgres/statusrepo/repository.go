package statusrepo

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusLedger implements StatusLedger using GORM. The ledger only
// ever inserts and reads; the one deletion path is the terminal-duplicate
// pruning used by the cleanup job.
type GormStatusLedger struct {
	db *gorm.DB
}

// NewGormStatusLedger creates a new GORM status ledger.
func NewGormStatusLedger(db *gorm.DB) *GormStatusLedger {
	return &GormStatusLedger{db: db}
}

// Append adds one event and returns it with its assigned sequence.
func (r *GormStatusLedger) Append(ctx context.Context, event order.StatusEvent) (order.StatusEvent, error) {
	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return order.StatusEvent{}, errs.NewTransientStorageError("append status event", err)
	}

	return toDomain(dto)
}

// Latest returns the most recent event for the order by (ts, seq)
// descending.
func (r *GormStatusLedger) Latest(ctx context.Context, orderID string) (order.StatusEvent, error) {
	var dto StatusEventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("ts DESC").Order("seq DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.StatusEvent{}, errs.NewObjectNotFoundError("orderId", orderID)
		}
		return order.StatusEvent{}, errs.NewTransientStorageError("latest status event", err)
	}

	return toDomain(dto)
}

// LatestWithStatus returns the most recent event carrying the given status.
func (r *GormStatusLedger) LatestWithStatus(
	ctx context.Context,
	orderID string,
	status order.Status,
) (order.StatusEvent, error) {
	var dto StatusEventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID, status.String()).
		Order("ts DESC").Order("seq DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.StatusEvent{}, errs.NewObjectNotFoundError("orderId", orderID)
		}
		return order.StatusEvent{}, errs.NewTransientStorageError("latest status event by status", err)
	}

	return toDomain(dto)
}

// PruneDuplicateTerminal deletes redundant terminal events, keeping the
// earliest event of each (order, status) pair. Safe by construction: a
// duplicate terminal event never changes which state is observed as
// latest, it only pads the ledger.
func (r *GormStatusLedger) PruneDuplicateTerminal(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM order_status_events e
		USING order_status_events keep
		WHERE e.order_id = keep.order_id
		  AND e.status = keep.status
		  AND e.status IN ('canceled', 'timed_out', 'received')
		  AND keep.seq < e.seq
	`)
	if result.Error != nil {
		return 0, errs.NewTransientStorageError("prune duplicate terminal events", result.Error)
	}

	return result.RowsAffected, nil
}
