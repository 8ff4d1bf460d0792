package commands

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"bookstore/internal/core/domain/model/account"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
)

const (
	registerMaxAttempts = 20
	registerRetryDelay  = 50 * time.Millisecond
)

// registerMu serializes session token generation across concurrent
// registrations. It exists only for token generation; balance and stock
// correctness never depends on it.
var registerMu sync.Mutex

// RegisterAccountCommandHandler handles account registration.
// Issues an initial session token and persists the account, retrying
// transient storage failures a bounded number of times. Registration is
// the only operation with an automatic retry; everything else surfaces
// storage failures immediately.
type RegisterAccountCommandHandler struct {
	uowFactory    AccountUoWFactory
	tokenProvider ports.TokenProvider
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(
	uowFactory AccountUoWFactory,
	tokenProvider ports.TokenProvider,
) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory:    uowFactory,
		tokenProvider: tokenProvider,
	}
}

// Handle processes the registration command. A duplicate identity fails
// with a Conflict error; transient storage failures are retried up to
// registerMaxAttempts with a short jittered delay.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < registerMaxAttempts; attempt++ {
		lastErr = h.register(ctx, cmd)
		if lastErr == nil {
			return nil
		}
		if !errors.Is(lastErr, errs.ErrTransientStorage) {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(registerRetryDelay + time.Duration(rand.Int63n(int64(registerRetryDelay)))):
		}
	}

	return lastErr
}

func (h *RegisterAccountCommandHandler) register(ctx context.Context, cmd RegisterAccountCommand) error {
	newAccount, err := account.NewAccount(cmd.AccountID(), cmd.Password())
	if err != nil {
		return err
	}

	registerMu.Lock()
	now := time.Now()
	terminal := fmt.Sprintf("terminal_%d", now.UnixMilli())
	token, err := h.tokenProvider.Issue(cmd.AccountID(), terminal, now)
	registerMu.Unlock()
	if err != nil {
		return err
	}

	newAccount.AttachSession(token, terminal)

	uow := h.uowFactory.Create()
	return uow.AccountRepository().Add(ctx, newAccount)
}
