package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var (
	ErrAddBookCommandIsNotConstructed = errors.New(
		"AddBookCommand must be created via NewAddBookCommand constructor",
	)
	ErrBookInfoIsRequired = errors.New("book info is required")
)

// AddBookCommand represents a request to list a book in a store with an
// initial stock level. BookInfo carries the raw metadata blob the price
// and search attributes are extracted from.
type AddBookCommand struct { //nolint:recvcheck //using for validation
	ownerID  string
	token    string
	storeID  string
	bookID   string
	bookInfo string
	stock    int64

	guard guard.ConstructorGuard
}

// NewAddBookCommand creates a command to list a book.
// Validates identities, metadata presence and a non-negative stock level.
func NewAddBookCommand(
	ownerID string,
	token string,
	storeID string,
	bookID string,
	bookInfo string,
	stock int64,
) (AddBookCommand, error) {
	cmd := AddBookCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setToken(token),
		cmd.setStoreID(storeID),
		cmd.setBookID(bookID),
		cmd.setBookInfo(bookInfo),
		cmd.setStock(stock),
	); err != nil {
		return AddBookCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddBookCommand) Validate() error {
	return c.guard.Validate(ErrAddBookCommandIsNotConstructed)
}

// OwnerID returns the calling account identity.
func (c AddBookCommand) OwnerID() string {
	return c.ownerID
}

// Token returns the presented session token.
func (c AddBookCommand) Token() string {
	return c.token
}

// StoreID returns the store the book is listed in.
func (c AddBookCommand) StoreID() string {
	return c.storeID
}

// BookID returns the book identity.
func (c AddBookCommand) BookID() string {
	return c.bookID
}

// BookInfo returns the raw metadata blob.
func (c AddBookCommand) BookInfo() string {
	return c.bookInfo
}

// Stock returns the initial stock level.
func (c AddBookCommand) Stock() int64 {
	return c.stock
}

func (c *AddBookCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrAccountIDIsRequired
	}

	c.ownerID = ownerID
	return nil
}

func (c *AddBookCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}

func (c *AddBookCommand) setStoreID(storeID string) error {
	if storeID == "" {
		return ErrStoreIDIsRequired
	}

	c.storeID = storeID
	return nil
}

func (c *AddBookCommand) setBookID(bookID string) error {
	if bookID == "" {
		return ErrBookIDIsRequired
	}

	c.bookID = bookID
	return nil
}

func (c *AddBookCommand) setBookInfo(bookInfo string) error {
	if bookInfo == "" {
		return ErrBookInfoIsRequired
	}

	c.bookInfo = bookInfo
	return nil
}

func (c *AddBookCommand) setStock(stock int64) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
