package commands

import (
	"context"
	"fmt"
	"time"

	"bookstore/internal/core/ports"
)

// ChangePasswordCommandHandler handles credential replacement. Password,
// token and terminal are swapped together so any session opened under
// the old credential dies with it.
type ChangePasswordCommandHandler struct {
	uowFactory    AccountUoWFactory
	tokenProvider ports.TokenProvider
}

// NewChangePasswordCommandHandler creates a handler for credential replacement.
func NewChangePasswordCommandHandler(
	uowFactory AccountUoWFactory,
	tokenProvider ports.TokenProvider,
) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory:    uowFactory,
		tokenProvider: tokenProvider,
	}
}

// Handle authenticates with the old credential and installs the new one.
func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	accountRepo := uow.AccountRepository()

	holder, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if err = holder.Authenticate(cmd.OldPassword()); err != nil {
		return err
	}

	now := time.Now()
	terminal := fmt.Sprintf("terminal_%d", now.UnixMilli())
	token, err := h.tokenProvider.Issue(cmd.AccountID(), terminal, now)
	if err != nil {
		return err
	}

	return accountRepo.UpdateCredential(ctx, cmd.AccountID(), cmd.NewPassword(), token, terminal)
}
