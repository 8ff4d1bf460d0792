package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand represents a request to close the account's session.
type LogoutCommand struct { //nolint:recvcheck //using for validation
	accountID string
	token     string

	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a command to close a session.
func NewLogoutCommand(accountID string, token string) (LogoutCommand, error) {
	cmd := LogoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setToken(token),
	); err != nil {
		return LogoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

// AccountID returns the account identity.
func (c LogoutCommand) AccountID() string {
	return c.accountID
}

// Token returns the presented session token.
func (c LogoutCommand) Token() string {
	return c.token
}

func (c *LogoutCommand) setAccountID(accountID string) error {
	if accountID == "" {
		return ErrAccountIDIsRequired
	}

	c.accountID = accountID
	return nil
}

func (c *LogoutCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}
