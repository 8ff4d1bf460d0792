package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// RegisterAccountCommand represents a request to create a new account.
//
// Example:
//
//	cmd, err := NewRegisterAccountCommand("alice", "secret")
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterAccountCommandHandler(uowFactory, tokenProvider)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID string
	password  string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// Validates that account id and password are not empty.
func NewRegisterAccountCommand(accountID string, password string) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setPassword(password),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the requested account identity.
func (c RegisterAccountCommand) AccountID() string {
	return c.accountID
}

// Password returns the requested credential.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

func (c *RegisterAccountCommand) setAccountID(accountID string) error {
	if accountID == "" {
		return ErrAccountIDIsRequired
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
