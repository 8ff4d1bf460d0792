package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrAddStockCommandIsNotConstructed = errors.New(
	"AddStockCommand must be created via NewAddStockCommand constructor",
)

// AddStockCommand represents a request to raise the stock level of a
// listed book.
type AddStockCommand struct { //nolint:recvcheck //using for validation
	ownerID string
	token   string
	storeID string
	bookID  string
	count   int64

	guard guard.ConstructorGuard
}

// NewAddStockCommand creates a command to raise a stock level.
// Validates identities and a positive count.
func NewAddStockCommand(
	ownerID string,
	token string,
	storeID string,
	bookID string,
	count int64,
) (AddStockCommand, error) {
	cmd := AddStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setToken(token),
		cmd.setStoreID(storeID),
		cmd.setBookID(bookID),
		cmd.setCount(count),
	); err != nil {
		return AddStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStockCommand) Validate() error {
	return c.guard.Validate(ErrAddStockCommandIsNotConstructed)
}

// OwnerID returns the calling account identity.
func (c AddStockCommand) OwnerID() string {
	return c.ownerID
}

// Token returns the presented session token.
func (c AddStockCommand) Token() string {
	return c.token
}

// StoreID returns the store the book is listed in.
func (c AddStockCommand) StoreID() string {
	return c.storeID
}

// BookID returns the book identity.
func (c AddStockCommand) BookID() string {
	return c.bookID
}

// Count returns the number of units to add.
func (c AddStockCommand) Count() int64 {
	return c.count
}

func (c *AddStockCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrAccountIDIsRequired
	}

	c.ownerID = ownerID
	return nil
}

func (c *AddStockCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}

func (c *AddStockCommand) setStoreID(storeID string) error {
	if storeID == "" {
		return ErrStoreIDIsRequired
	}

	c.storeID = storeID
	return nil
}

func (c *AddStockCommand) setBookID(bookID string) error {
	if bookID == "" {
		return ErrBookIDIsRequired
	}

	c.bookID = bookID
	return nil
}

func (c *AddStockCommand) setCount(count int64) error {
	if count <= 0 {
		return ErrCountIsInvalid
	}

	c.count = count
	return nil
}
