package commands

import (
	"errors"

	"bookstore/internal/pkg/guard"
)

var (
	ErrChangePasswordCommandIsNotConstructed = errors.New(
		"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
	)
	ErrNewPasswordIsRequired = errors.New("new password is required")
)

// ChangePasswordCommand represents a request to replace the account's
// credential. Existing sessions are invalidated as a side effect.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	accountID   string
	oldPassword string
	newPassword string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates a command to replace a credential.
func NewChangePasswordCommand(
	accountID string,
	oldPassword string,
	newPassword string,
) (ChangePasswordCommand, error) {
	cmd := ChangePasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setOldPassword(oldPassword),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// AccountID returns the account identity.
func (c ChangePasswordCommand) AccountID() string {
	return c.accountID
}

// OldPassword returns the current credential.
func (c ChangePasswordCommand) OldPassword() string {
	return c.oldPassword
}

// NewPassword returns the replacement credential.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ChangePasswordCommand) setAccountID(accountID string) error {
	if accountID == "" {
		return ErrAccountIDIsRequired
	}

	c.accountID = accountID
	return nil
}

func (c *ChangePasswordCommand) setOldPassword(oldPassword string) error {
	if oldPassword == "" {
		return ErrPasswordIsRequired
	}

	c.oldPassword = oldPassword
	return nil
}

func (c *ChangePasswordCommand) setNewPassword(newPassword string) error {
	if newPassword == "" {
		return ErrNewPasswordIsRequired
	}

	c.newPassword = newPassword
	return nil
}
