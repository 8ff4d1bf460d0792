package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents a request to open a session on a terminal.
type LoginCommand struct { //nolint:recvcheck //using for validation
	accountID string
	password  string
	terminal  string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a command to open a session.
// Validates that account id, password and terminal are not empty.
func NewLoginCommand(accountID string, password string, terminal string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setPassword(password),
		cmd.setTerminal(terminal),
	); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// AccountID returns the account identity.
func (c LoginCommand) AccountID() string {
	return c.accountID
}

// Password returns the presented credential.
func (c LoginCommand) Password() string {
	return c.password
}

// Terminal returns the terminal the session is opened from.
func (c LoginCommand) Terminal() string {
	return c.terminal
}

func (c *LoginCommand) setAccountID(accountID string) error {
	if accountID == "" {
		return ErrAccountIDIsRequired
	}

	c.accountID = accountID
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *LoginCommand) setTerminal(terminal string) error {
	if terminal == "" {
		return ErrTerminalIsRequired
	}

	c.terminal = terminal
	return nil
}
