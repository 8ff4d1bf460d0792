package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents a store owner's request to mark an order
// shipped.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	callerID string
	orderID  string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order.
func NewShipOrderCommand(callerID string, orderID string) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCallerID(callerID),
		cmd.setOrderID(orderID),
	); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// CallerID returns the calling account identity.
func (c ShipOrderCommand) CallerID() string {
	return c.callerID
}

// OrderID returns the order identity.
func (c ShipOrderCommand) OrderID() string {
	return c.orderID
}

func (c *ShipOrderCommand) setCallerID(callerID string) error {
	if callerID == "" {
		return ErrAccountIDIsRequired
	}

	c.callerID = callerID
	return nil
}

func (c *ShipOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
