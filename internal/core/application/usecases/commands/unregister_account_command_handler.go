package commands

import (
	"context"
)

// UnregisterAccountCommandHandler handles account deletion.
type UnregisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUnregisterAccountCommandHandler creates a handler for account deletion.
func NewUnregisterAccountCommandHandler(uowFactory AccountUoWFactory) UnregisterAccountCommandHandler {
	return UnregisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authenticates the account and deletes it.
func (h *UnregisterAccountCommandHandler) Handle(ctx context.Context, cmd UnregisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	accountRepo := uow.AccountRepository()

	holder, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if err = holder.Authenticate(cmd.Password()); err != nil {
		return err
	}

	return accountRepo.Delete(ctx, cmd.AccountID())
}
