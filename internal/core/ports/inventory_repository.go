package ports

import (
	"context"

	"bookstore/internal/core/domain/model/store"
)

// InventoryRepository defines the persistence contract for inventory
// lines, including the guarded atomic stock primitives. Stock never
// changes through read-modify-write: placing an order only observes
// stock, and payment deducts it with a single conditional operation.
type InventoryRepository interface {
	// Add lists a book in a store. Returns an ObjectAlreadyExists error
	// when the (store, book) pair is taken.
	Add(ctx context.Context, aggregate *store.InventoryLine) error

	// Get retrieves one inventory line by its composite key.
	Get(ctx context.Context, storeID string, bookID string) (*store.InventoryLine, error)

	// AddStock increments stock unconditionally as one atomic operation.
	// Returns ObjectNotFound when no such line exists.
	AddStock(ctx context.Context, storeID string, bookID string, delta int64) error

	// DeductStock decrements stock by count, guarded on stock >= count as
	// one atomic operation. Returns a PreconditionFailed ("stock level
	// low") error when the guard matches no row; this is the sole defense
	// against concurrent overselling.
	DeductStock(ctx context.Context, storeID string, bookID string, count int64) error
}
