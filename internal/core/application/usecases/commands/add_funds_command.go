package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrAddFundsCommandIsNotConstructed = errors.New(
	"AddFundsCommand must be created via NewAddFundsCommand constructor",
)

// AddFundsCommand represents a request to top up an account balance.
type AddFundsCommand struct { //nolint:recvcheck //using for validation
	accountID string
	password  string
	amount    int64

	guard guard.ConstructorGuard
}

// NewAddFundsCommand creates a command to top up a balance.
// Validates that the amount is positive.
func NewAddFundsCommand(accountID string, password string, amount int64) (AddFundsCommand, error) {
	cmd := AddFundsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setPassword(password),
		cmd.setAmount(amount),
	); err != nil {
		return AddFundsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddFundsCommand) Validate() error {
	return c.guard.Validate(ErrAddFundsCommandIsNotConstructed)
}

// AccountID returns the account identity.
func (c AddFundsCommand) AccountID() string {
	return c.accountID
}

// Password returns the presented credential.
func (c AddFundsCommand) Password() string {
	return c.password
}

// Amount returns the top-up amount in the smallest currency unit.
func (c AddFundsCommand) Amount() int64 {
	return c.amount
}

func (c *AddFundsCommand) setAccountID(accountID string) error {
	if accountID == "" {
		return ErrAccountIDIsRequired
	}

	c.accountID = accountID
	return nil
}

func (c *AddFundsCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *AddFundsCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}
