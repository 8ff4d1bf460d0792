package commands

import (
	"errors"
	"time"

	"bookstore/internal/pkg/guard"
)

var ErrSetOrderTimeoutCommandIsNotConstructed = errors.New(
	"SetOrderTimeoutCommand must be created via NewSetOrderTimeoutCommand constructor",
)

// SetOrderTimeoutCommand represents an administrative request to change
// the order expiry window at runtime.
type SetOrderTimeoutCommand struct { //nolint:recvcheck //using for validation
	timeout time.Duration

	guard guard.ConstructorGuard
}

// NewSetOrderTimeoutCommand creates a command to change the expiry window.
// Validates a positive duration.
func NewSetOrderTimeoutCommand(timeout time.Duration) (SetOrderTimeoutCommand, error) {
	cmd := SetOrderTimeoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTimeout(timeout); err != nil {
		return SetOrderTimeoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderTimeoutCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderTimeoutCommandIsNotConstructed)
}

// Timeout returns the requested expiry window.
func (c SetOrderTimeoutCommand) Timeout() time.Duration {
	return c.timeout
}

func (c *SetOrderTimeoutCommand) setTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return ErrTimeoutIsInvalid
	}

	c.timeout = timeout
	return nil
}
