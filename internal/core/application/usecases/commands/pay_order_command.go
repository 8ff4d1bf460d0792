package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a request to settle an order.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	buyerID  string
	password string
	orderID  string

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to settle an order.
func NewPayOrderCommand(buyerID string, password string, orderID string) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setPassword(password),
		cmd.setOrderID(orderID),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// BuyerID returns the buying account identity.
func (c PayOrderCommand) BuyerID() string {
	return c.buyerID
}

// Password returns the presented credential.
func (c PayOrderCommand) Password() string {
	return c.password
}

// OrderID returns the order identity.
func (c PayOrderCommand) OrderID() string {
	return c.orderID
}

func (c *PayOrderCommand) setBuyerID(buyerID string) error {
	if buyerID == "" {
		return ErrAccountIDIsRequired
	}

	c.buyerID = buyerID
	return nil
}

func (c *PayOrderCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *PayOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
