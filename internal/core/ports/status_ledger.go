package ports

import (
	"context"

	"bookstore/internal/core/domain/model/order"
)

// StatusLedger defines the append-only store of order status events.
// Events are never updated; the current state of an order is recomputed
// on every read as the maximum (timestamp, sequence) event, so concurrent
// writers can only race to append, never to overwrite.
type StatusLedger interface {
	// Append adds one event and returns it with its storage-assigned
	// monotonic sequence.
	Append(ctx context.Context, event order.StatusEvent) (order.StatusEvent, error)

	// Latest returns the most recent event for the order, by
	// (timestamp, sequence) descending. Returns ObjectNotFound when the
	// order has no events.
	Latest(ctx context.Context, orderID string) (order.StatusEvent, error)

	// LatestWithStatus returns the most recent event carrying the given
	// status, used to recover the parties of a settled order after the
	// header is gone. Returns ObjectNotFound when no such event exists.
	LatestWithStatus(ctx context.Context, orderID string, status order.Status) (order.StatusEvent, error)

	// PruneDuplicateTerminal deletes redundant terminal events, keeping
	// the earliest terminal event of each (order, status) pair. Racing
	// lazy-timeout observers may append TimedOut more than once; pruning
	// the padding never changes any order's observable state. Returns
	// the number of events removed.
	PruneDuplicateTerminal(ctx context.Context) (int64, error)
}
