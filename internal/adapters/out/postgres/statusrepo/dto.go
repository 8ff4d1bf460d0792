// Package statusrepo provides the GORM-backed append-only status ledger.
package statusrepo

import (
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
)

// StatusEventDTO is the database representation of one ledger entry.
// Seq is a bigserial: the insertion-order tiebreak that makes "latest
// event" deterministic when two events share a millisecond timestamp.
type StatusEventDTO struct {
	Seq     int64  `gorm:"primaryKey;autoIncrement"`
	OrderID string `gorm:"not null;index:idx_status_events_order"`
	Status  string `gorm:"not null"`
	Ts      int64  `gorm:"not null"`
	UserID  string `gorm:"index:idx_status_events_user"`
	StoreID string
}

// TableName overrides GORM's default naming to use "order_status_events".
func (StatusEventDTO) TableName() string {
	return "order_status_events"
}

func fromDomain(event order.StatusEvent) StatusEventDTO {
	return StatusEventDTO{
		OrderID: event.OrderID(),
		Status:  event.Status().String(),
		Ts:      event.Timestamp().Millis(),
		UserID:  event.UserID(),
		StoreID: event.StoreID(),
	}
}

func toDomain(dto StatusEventDTO) (order.StatusEvent, error) {
	return order.RestoreStatusEvent(
		dto.Seq,
		dto.OrderID,
		order.Status(dto.Status),
		kernel.TimestampFromMillis(dto.Ts),
		dto.UserID,
		dto.StoreID,
	)
}
