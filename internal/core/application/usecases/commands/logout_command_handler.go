package commands

import (
	"context"
	"fmt"
	"time"

	"bookstore/internal/core/ports"
)

// LogoutCommandHandler handles session closing. Logging out replaces the
// stored session with a token for a placeholder terminal, which no
// future request can present.
type LogoutCommandHandler struct {
	uowFactory    AccountUoWFactory
	tokenProvider ports.TokenProvider
}

// NewLogoutCommandHandler creates a handler for session closing.
func NewLogoutCommandHandler(
	uowFactory AccountUoWFactory,
	tokenProvider ports.TokenProvider,
) LogoutCommandHandler {
	return LogoutCommandHandler{
		uowFactory:    uowFactory,
		tokenProvider: tokenProvider,
	}
}

// Handle verifies the presented token and invalidates the session.
func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	accountRepo := uow.AccountRepository()

	holder, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if err = verifySession(holder, cmd.Token(), h.tokenProvider); err != nil {
		return err
	}

	now := time.Now()
	terminal := fmt.Sprintf("terminal_%d", now.UnixMilli())
	replacement, err := h.tokenProvider.Issue(cmd.AccountID(), terminal, now)
	if err != nil {
		return err
	}

	return accountRepo.UpdateSession(ctx, cmd.AccountID(), replacement, terminal)
}
