package commands

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
)

// AddFundsCommandHandler handles balance top-ups: a credential check
// followed by one unconditional atomic credit.
type AddFundsCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewAddFundsCommandHandler creates a handler for balance top-ups.
func NewAddFundsCommandHandler(uowFactory AccountUoWFactory) AddFundsCommandHandler {
	return AddFundsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle authenticates the account and credits the amount.
func (h *AddFundsCommandHandler) Handle(ctx context.Context, cmd AddFundsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	amount, err := kernel.NewMoney(cmd.Amount())
	if err != nil {
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

	return accountRepo.Credit(ctx, cmd.AccountID(), amount)
}
