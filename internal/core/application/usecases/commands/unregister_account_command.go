package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrUnregisterAccountCommandIsNotConstructed = errors.New(
	"UnregisterAccountCommand must be created via NewUnregisterAccountCommand constructor",
)

// UnregisterAccountCommand represents a request to delete an account.
// Deletion does not require the account to have settled all orders; the
// status ledger keeps its history either way.
type UnregisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID string
	password  string

	guard guard.ConstructorGuard
}

// NewUnregisterAccountCommand creates a command to delete an account.
func NewUnregisterAccountCommand(accountID string, password string) (UnregisterAccountCommand, error) {
	cmd := UnregisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setPassword(password),
	); err != nil {
		return UnregisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnregisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrUnregisterAccountCommandIsNotConstructed)
}

// AccountID returns the account identity.
func (c UnregisterAccountCommand) AccountID() string {
	return c.accountID
}

// Password returns the presented credential.
func (c UnregisterAccountCommand) Password() string {
	return c.password
}

func (c *UnregisterAccountCommand) setAccountID(accountID string) error {
	if accountID == "" {
		return ErrAccountIDIsRequired
	}

	c.accountID = accountID
	return nil
}

func (c *UnregisterAccountCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
