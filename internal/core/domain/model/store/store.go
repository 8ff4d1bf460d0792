package store

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
)

var (
	// ErrStoreIsNotConstructed is returned when a Store instance was not
	// created through NewStore or RestoreStore.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore or RestoreStore")

	// ErrStoreIDIsRequired is returned when the store identity is empty.
	ErrStoreIDIsRequired = errors.New("store id is required")

	// ErrOwnerIDIsRequired is returned when the owner identity is empty.
	ErrOwnerIDIsRequired = errors.New("owner id is required")
)

// Store is a seller's shop. It is created once per owner and immutable
// thereafter: there is no ownership transfer. The owner identity is what
// `ship` authorizes against and who receives settled funds.
type Store struct {
	id      string
	ownerID string

	guard kernel.ConstructorGuard
}

// NewStore creates a store owned by the given account.
func NewStore(id string, ownerID string) (*Store, error) {
	if id == "" {
		return nil, ErrStoreIDIsRequired
	}
	if ownerID == "" {
		return nil, ErrOwnerIDIsRequired
	}

	return &Store{
		id:      id,
		ownerID: ownerID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// RestoreStore reconstructs a store from persistence.
func RestoreStore(id string, ownerID string) (*Store, error) {
	return NewStore(id, ownerID)
}

// ID returns the store identity.
func (s *Store) ID() string {
	return s.id
}

// OwnerID returns the owning account identity.
func (s *Store) OwnerID() string {
	return s.ownerID
}

// IsOwnedBy reports whether the given account owns this store.
func (s *Store) IsOwnedBy(accountID string) bool {
	return s.ownerID == accountID
}

// Validate ensures the store was created through a constructor.
func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}
