package ports

import (
	"context"

	"bookstore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the transient
// order header and its lines. Both exist only between creation and
// successful payment; after that the status ledger is the only record.
type OrderRepository interface {
	// Add persists the header and all lines of a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines. Returns ObjectNotFound once
	// the order has been paid (and therefore deleted).
	Get(ctx context.Context, id string) (*order.Order, error)

	// Delete removes the lines and the header. Called once at payment
	// completion to make re-payment impossible.
	Delete(ctx context.Context, id string) error
}
