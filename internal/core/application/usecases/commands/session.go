package commands

import (
	"time"

	"bookstore/internal/core/domain/model/account"
	"bookstore/internal/core/ports"
	"bookstore/internal/pkg/errs"
)

// verifySession checks a presented token against the account's stored
// session and the provider's signature and age checks. Both must pass:
// token equality alone would accept an expired session, and signature
// verification alone would accept a superseded one.
func verifySession(holder *account.Account, token string, provider ports.TokenProvider) error {
	if holder.Token() != token {
		return errs.NewUnauthorizedError("token mismatch")
	}

	return provider.Verify(holder.ID(), token, time.Now())
}
