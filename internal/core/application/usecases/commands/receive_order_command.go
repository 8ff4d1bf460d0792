package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrReceiveOrderCommandIsNotConstructed = errors.New(
	"ReceiveOrderCommand must be created via NewReceiveOrderCommand constructor",
)

// ReceiveOrderCommand represents a buyer's confirmation that a shipped
// order arrived.
type ReceiveOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID string
	orderID string

	guard guard.ConstructorGuard
}

// NewReceiveOrderCommand creates a command to confirm receipt.
func NewReceiveOrderCommand(buyerID string, orderID string) (ReceiveOrderCommand, error) {
	cmd := ReceiveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setOrderID(orderID),
	); err != nil {
		return ReceiveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrReceiveOrderCommandIsNotConstructed)
}

// BuyerID returns the buying account identity.
func (c ReceiveOrderCommand) BuyerID() string {
	return c.buyerID
}

// OrderID returns the order identity.
func (c ReceiveOrderCommand) OrderID() string {
	return c.orderID
}

func (c *ReceiveOrderCommand) setBuyerID(buyerID string) error {
	if buyerID == "" {
		return ErrAccountIDIsRequired
	}

	c.buyerID = buyerID
	return nil
}

func (c *ReceiveOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
