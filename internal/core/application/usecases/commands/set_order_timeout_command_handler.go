package commands

import (
	"context"

	"bookstore/internal/core/domain/services"
)

// SetOrderTimeoutCommandHandler mutates the injected timeout policy. The
// policy instance is shared with the settlement handler, so the new
// window takes effect on the next expiry check without a restart.
type SetOrderTimeoutCommandHandler struct {
	timeoutPolicy *services.TimeoutPolicy
}

// NewSetOrderTimeoutCommandHandler creates a handler for timeout tuning.
func NewSetOrderTimeoutCommandHandler(timeoutPolicy *services.TimeoutPolicy) SetOrderTimeoutCommandHandler {
	return SetOrderTimeoutCommandHandler{
		timeoutPolicy: timeoutPolicy,
	}
}

// Handle applies the new expiry window.
func (h *SetOrderTimeoutCommandHandler) Handle(_ context.Context, cmd SetOrderTimeoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.timeoutPolicy.SetTimeout(cmd.Timeout())
}
