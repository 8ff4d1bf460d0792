package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderItem is one requested (book, count) pair of an order.
type OrderItem struct {
	BookID string
	Count  int64
}

// PlaceOrderCommand represents a request to create an order for a buyer
// against one store.
//
// Example:
//
//	items := []OrderItem{{BookID: "book-1", Count: 2}}
//	cmd, err := NewPlaceOrderCommand("alice", "store-1", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID string
	storeID string
	items   []OrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates identities, a non-empty item list, and positive counts.
func NewPlaceOrderCommand(buyerID string, storeID string, items []OrderItem) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setStoreID(storeID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// BuyerID returns the buying account identity.
func (c PlaceOrderCommand) BuyerID() string {
	return c.buyerID
}

// StoreID returns the store the order is placed against.
func (c PlaceOrderCommand) StoreID() string {
	return c.storeID
}

// Items returns the requested (book, count) pairs in request order.
func (c PlaceOrderCommand) Items() []OrderItem {
	return c.items
}

func (c *PlaceOrderCommand) setBuyerID(buyerID string) error {
	if buyerID == "" {
		return ErrAccountIDIsRequired
	}

	c.buyerID = buyerID
	return nil
}

func (c *PlaceOrderCommand) setStoreID(storeID string) error {
	if storeID == "" {
		return ErrStoreIDIsRequired
	}

	c.storeID = storeID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if item.BookID == "" {
			return ErrBookIDIsRequired
		}
		if item.Count <= 0 {
			return ErrCountIsInvalid
		}
	}

	c.items = items
	return nil
}
