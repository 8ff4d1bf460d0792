package commands

import (
	"context"
	"time"

	"bookstore/internal/core/ports"
)

// LoginCommandHandler handles session opening. On success the freshly
// issued token replaces whatever session the account held before, so an
// account has at most one live session.
type LoginCommandHandler struct {
	uowFactory    AccountUoWFactory
	tokenProvider ports.TokenProvider
}

// NewLoginCommandHandler creates a handler for session opening.
func NewLoginCommandHandler(
	uowFactory AccountUoWFactory,
	tokenProvider ports.TokenProvider,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory:    uowFactory,
		tokenProvider: tokenProvider,
	}
}

// Handle authenticates the account and returns a new session token.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	accountRepo := uow.AccountRepository()

	loggedIn, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return "", err
	}

	if err = loggedIn.Authenticate(cmd.Password()); err != nil {
		return "", err
	}

	token, err := h.tokenProvider.Issue(cmd.AccountID(), cmd.Terminal(), time.Now())
	if err != nil {
		return "", err
	}

	if err = accountRepo.UpdateSession(ctx, cmd.AccountID(), token, cmd.Terminal()); err != nil {
		return "", err
	}

	return token, nil
}
