package ports

import (
	"context"

	"bookstore/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
// Stores are immutable after creation, so there is no update operation.
type StoreRepository interface {
	// Add persists a new store. Returns an ObjectAlreadyExists error
	// when the identity is taken.
	Add(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store by identity, used to resolve the owner for
	// settlement and ship authorization.
	Get(ctx context.Context, id string) (*store.Store, error)

	// Exists reports whether a store identity is taken.
	Exists(ctx context.Context, id string) (bool, error)
}
