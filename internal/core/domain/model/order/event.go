package order

import (
	"bookstore/internal/core/domain/model/kernel"
)

// StatusEvent is one append-only entry of the order status ledger. The
// ledger is the single source of truth for an order's state: "current" is
// always the event with the greatest (timestamp, sequence) pair, so
// writers race to append, never to overwrite.
//
// Seq is assigned monotonically by storage on append. It breaks ties
// between events sharing a millisecond timestamp, making "latest event"
// totally ordered and deterministic.
type StatusEvent struct {
	seq     int64
	orderID string
	status  Status
	ts      kernel.Timestamp
	userID  string
	storeID string
}

// NewStatusEvent creates an event ready to be appended. Seq stays zero
// until storage assigns it.
func NewStatusEvent(orderID string, status Status, ts kernel.Timestamp, userID string, storeID string) (StatusEvent, error) {
	if orderID == "" {
		return StatusEvent{}, ErrOrderIDIsRequired
	}
	if err := status.Validate(); err != nil {
		return StatusEvent{}, err
	}

	return StatusEvent{
		orderID: orderID,
		status:  status,
		ts:      ts,
		userID:  userID,
		storeID: storeID,
	}, nil
}

// RestoreStatusEvent reconstructs a persisted event including its sequence.
func RestoreStatusEvent(
	seq int64,
	orderID string,
	status Status,
	ts kernel.Timestamp,
	userID string,
	storeID string,
) (StatusEvent, error) {
	ev, err := NewStatusEvent(orderID, status, ts, userID, storeID)
	if err != nil {
		return StatusEvent{}, err
	}
	ev.seq = seq
	return ev, nil
}

// Seq returns the storage-assigned monotonic sequence, zero before append.
func (e StatusEvent) Seq() int64 { return e.seq }

// OrderID returns the order identity.
func (e StatusEvent) OrderID() string { return e.orderID }

// Status returns the recorded status tag.
func (e StatusEvent) Status() Status { return e.status }

// Timestamp returns the recording instant.
func (e StatusEvent) Timestamp() kernel.Timestamp { return e.ts }

// UserID returns the acting user. For the Paid event this is the buyer,
// which is what receive authorizes against once the header is gone.
func (e StatusEvent) UserID() string { return e.userID }

// StoreID returns the store, carried so ship can recover it after the
// order header has been deleted.
func (e StatusEvent) StoreID() string { return e.storeID }
