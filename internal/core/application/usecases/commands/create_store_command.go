package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommand represents a request to open a store owned by the
// calling account.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	ownerID string
	token   string
	storeID string

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to open a store.
func NewCreateStoreCommand(ownerID string, token string, storeID string) (CreateStoreCommand, error) {
	cmd := CreateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setToken(token),
		cmd.setStoreID(storeID),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// OwnerID returns the calling account identity.
func (c CreateStoreCommand) OwnerID() string {
	return c.ownerID
}

// Token returns the presented session token.
func (c CreateStoreCommand) Token() string {
	return c.token
}

// StoreID returns the requested store identity.
func (c CreateStoreCommand) StoreID() string {
	return c.storeID
}

func (c *CreateStoreCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrAccountIDIsRequired
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateStoreCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}

func (c *CreateStoreCommand) setStoreID(storeID string) error {
	if storeID == "" {
		return ErrStoreIDIsRequired
	}

	c.storeID = storeID
	return nil
}
